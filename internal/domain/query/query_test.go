package query_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/ats/internal/domain/model"
	query "github.com/okian/ats/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func skills(levels ...model.SkillLevel) []model.Skill {
	out := make([]model.Skill, len(levels))
	for i, l := range levels {
		out[i] = model.Skill{Name: l.String(), Level: l}
	}
	return out
}

func candidateNames(list []model.Candidate) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Name
	}
	return out
}

func jobTitles(list []model.Job) []string {
	out := make([]string, len(list))
	for i, j := range list {
		out[i] = j.Title
	}
	return out
}

func TestFilters(t *testing.T) {
	Convey("Given jobs starting on different dates", t, func() {
		jobs := []model.Job{
			model.NewJob("jan", day(2024, time.January, 15), nil, model.GenderUnspecified),
			model.NewJob("feb-1", day(2024, time.February, 1), nil, model.GenderUnspecified),
			model.NewJob("feb-29", day(2024, time.February, 29), nil, model.GenderUnspecified),
			model.NewJob("mar", day(2024, time.March, 2), nil, model.GenderUnspecified),
		}

		Convey("When filtering by a date range", func() {
			got := query.FilterByDate(jobs, day(2024, time.February, 1), day(2024, time.February, 29))

			Convey("Then both bounds should be inclusive", func() {
				So(jobTitles(got), ShouldResemble, []string{"feb-1", "feb-29"})
			})
		})

		Convey("When the range is empty", func() {
			got := query.FilterByDate(jobs, day(2025, time.January, 1), day(2025, time.December, 31))

			Convey("Then nothing should be returned", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})

	Convey("Given candidates born on different dates", t, func() {
		candidates := []model.Candidate{
			model.NewCandidate("a", day(1990, time.May, 1), nil, model.GenderMale),
			model.NewCandidate("b", day(2000, time.January, 1), nil, model.GenderFemale),
			model.NewCandidate("c", day(2005, time.June, 9), nil, model.GenderFemale),
		}

		Convey("When filtering by birth date", func() {
			got := query.FilterByBornAfter(candidates, day(2000, time.January, 1))

			Convey("Then candidates born on the date should be kept", func() {
				So(candidateNames(got), ShouldResemble, []string{"b", "c"})
			})
		})
	})
}

func TestOrdering(t *testing.T) {
	Convey("Given candidates with different skill sets", t, func() {
		candidates := []model.Candidate{
			model.NewCandidate("one-expert", day(2000, 1, 1), skills(model.Expert), model.GenderMale),
			model.NewCandidate("three-beginner", day(2000, 1, 1), skills(model.Beginner, model.Beginner, model.Beginner), model.GenderMale),
			model.NewCandidate("two-advanced", day(2000, 1, 1), skills(model.Advanced, model.Advanced), model.GenderFemale),
			model.NewCandidate("none", day(2000, 1, 1), nil, model.GenderFemale),
			model.NewCandidate("one-beginner", day(2000, 1, 1), skills(model.Beginner), model.GenderFemale),
		}

		Convey("When ordering by skill count", func() {
			got := query.OrderBySkills(candidates)

			Convey("Then most skills should come first and ties keep their order", func() {
				So(candidateNames(got), ShouldResemble, []string{"three-beginner", "two-advanced", "one-expert", "one-beginner", "none"})
			})

			Convey("And the input should keep its order", func() {
				So(candidates[0].Name, ShouldEqual, "one-expert")
			})
		})

		Convey("When ordering by weighted skills", func() {
			got := query.OrderByWeightedSkills(candidates, query.DefaultLevelWeights())

			Convey("Then the most valuable skills should come first", func() {
				So(candidateNames(got), ShouldResemble, []string{"one-expert", "two-advanced", "three-beginner", "one-beginner", "none"})
			})
		})

		Convey("When ordering with custom weights", func() {
			got := query.OrderByWeightedSkills(candidates, query.LevelWeights{model.Beginner: 4})

			Convey("Then unweighted levels should count as zero", func() {
				So(candidateNames(got)[:2], ShouldResemble, []string{"three-beginner", "one-beginner"})
				So(query.WeightedSkillSum(candidates[2], query.LevelWeights{model.Beginner: 4}), ShouldEqual, 0)
			})
		})
	})
}

func TestGenderRatio(t *testing.T) {
	Convey("Given a mixed candidate list", t, func() {
		candidates := []model.Candidate{
			model.NewCandidate("a", day(2000, 1, 1), nil, model.GenderFemale),
			model.NewCandidate("b", day(2000, 1, 1), nil, model.GenderFemale),
			model.NewCandidate("c", day(2000, 1, 1), nil, model.GenderFemale),
			model.NewCandidate("d", day(2000, 1, 1), nil, model.GenderMale),
			model.NewCandidate("e", day(2000, 1, 1), nil, model.GenderMale),
		}

		Convey("Then the ratio should be female over male", func() {
			ratio, err := query.GenderRatio(candidates)
			So(err, ShouldBeNil)
			So(ratio, ShouldAlmostEqual, 1.5)
		})

		Convey("And a list without men should report an undefined ratio", func() {
			_, err := query.GenderRatio(candidates[:3])
			So(errors.Is(err, query.ErrNoMaleCandidates), ShouldBeTrue)
		})
	})
}

func TestBusiestMonths(t *testing.T) {
	Convey("Given jobs spread across months", t, func() {
		jobs := []model.Job{
			model.NewJob("a", day(2024, time.March, 1), nil, model.GenderUnspecified),
			model.NewJob("b", day(2023, time.March, 20), nil, model.GenderUnspecified),
			model.NewJob("c", day(2024, time.January, 5), nil, model.GenderUnspecified),
			model.NewJob("d", day(2024, time.December, 5), nil, model.GenderUnspecified),
		}

		Convey("Then the month with most starts should be returned", func() {
			So(query.BusiestMonths(jobs), ShouldResemble, []time.Month{time.March})
		})

		Convey("And ties should return every tied month in calendar order", func() {
			jobs = append(jobs, model.NewJob("e", day(2024, time.December, 9), nil, model.GenderUnspecified))
			So(query.BusiestMonths(jobs), ShouldResemble, []time.Month{time.March, time.December})
		})

		Convey("And an empty list should return nothing", func() {
			So(query.BusiestMonths(nil), ShouldBeEmpty)
		})
	})
}

func TestMostInDemandSkills(t *testing.T) {
	Convey("Given jobs with required skills", t, func() {
		jobs := []model.Job{
			model.NewJob("a", day(2024, 1, 1), []model.Skill{{Name: "Go"}, {Name: "SQL"}}, model.GenderUnspecified),
			model.NewJob("b", day(2024, 1, 1), []model.Skill{{Name: "go"}, {Name: "Docker"}}, model.GenderUnspecified),
			model.NewJob("c", day(2024, 1, 1), []model.Skill{{Name: "docker"}}, model.GenderUnspecified),
		}

		Convey("Then names should be counted ignoring case", func() {
			So(query.MostInDemandSkills(jobs), ShouldResemble, []string{"Go", "Docker"})
		})

		Convey("And a clear winner should be returned alone", func() {
			jobs = append(jobs, model.NewJob("d", day(2024, 1, 1), []model.Skill{{Name: "GO"}}, model.GenderUnspecified))
			So(query.MostInDemandSkills(jobs), ShouldResemble, []string{"Go"})
		})

		Convey("And jobs without skills should yield nothing", func() {
			So(query.MostInDemandSkills(nil), ShouldBeEmpty)
		})
	})
}
