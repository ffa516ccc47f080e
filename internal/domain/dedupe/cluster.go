package dedupe

import "github.com/okian/ats/internal/domain/model"

// Cluster is a group of two or more candidates judged to be the same person.
type Cluster struct {
	Key     string
	Members []model.Candidate
}

// Clusters partitions the duplicates in list into clusters.
//
// Within each index bucket, the first unassigned candidate anchors a cluster
// made of itself and every later unassigned candidate born within the window
// of it. Anchors left alone are not clusters. A candidate belongs to at most
// one cluster.
func (d *Detector) Clusters(list []model.Candidate) []Cluster {
	var out []Cluster
	d.BuildIndex(list).Each(func(key string, bucket []model.Candidate) bool {
		if len(bucket) < 2 {
			return true
		}
		assigned := make([]bool, len(bucket))
		for i := range bucket {
			if assigned[i] {
				continue
			}
			members := []model.Candidate{bucket[i]}
			for j := i + 1; j < len(bucket); j++ {
				if !assigned[j] && d.bornClose(bucket[i], bucket[j]) {
					members = append(members, bucket[j])
					assigned[j] = true
				}
			}
			if len(members) > 1 {
				assigned[i] = true
				out = append(out, Cluster{Key: key, Members: members})
			}
		}
		return true
	})
	return out
}

// CountClusters returns the number of duplicate clusters in list, not the
// number of duplicated candidates. Empty or duplicate-free lists yield 0.
func (d *Detector) CountClusters(list []model.Candidate) int {
	return len(d.Clusters(list))
}

// CountClustersNaive counts the same clusters as CountClusters by comparing
// every pair. It costs O(n²) and suits only small lists.
func (d *Detector) CountClustersNaive(list []model.Candidate) int {
	assigned := make([]bool, len(list))
	count := 0
	for i := range list {
		if assigned[i] {
			continue
		}
		size := 1
		for j := i + 1; j < len(list); j++ {
			if !assigned[j] && d.AreSimilar(list[i], list[j]) {
				assigned[j] = true
				size++
			}
		}
		if size > 1 {
			assigned[i] = true
			count++
		}
	}
	return count
}

// Clusters partitions the duplicates in list using the default detector.
func Clusters(list []model.Candidate) []Cluster {
	return defaultDetector.Clusters(list)
}
