package scoring

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithGenderWeight sets the points awarded for a suitable gender.
func WithGenderWeight(weight int) Option {
	return func(s *Scorer) {
		if weight >= 0 {
			s.genderWeight = weight
		}
	}
}

// WithSkillWeight sets the points shared out over a job's required skills.
func WithSkillWeight(weight int) Option {
	return func(s *Scorer) {
		if weight >= 0 {
			s.skillWeight = weight
		}
	}
}

// WithHotThreshold sets the score a match must exceed to make a candidate hot.
func WithHotThreshold(threshold int) Option {
	return func(s *Scorer) {
		if threshold >= 0 && threshold <= maxScoreValue {
			s.hotThreshold = threshold
		}
	}
}

// WithWeightsFromConfig sets both weights at once. Pairs that do not add up to
// 100 are ignored so scores stay percentages.
func WithWeightsFromConfig(genderWeight, skillWeight int) Option {
	return func(s *Scorer) {
		if genderWeight >= 0 && skillWeight >= 0 && genderWeight+skillWeight == maxScoreValue {
			s.genderWeight = genderWeight
			s.skillWeight = skillWeight
		}
	}
}
