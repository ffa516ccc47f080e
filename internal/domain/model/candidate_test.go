package model_test

import (
	"errors"
	"testing"
	"time"

	model "github.com/okian/ats/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestCandidate(t *testing.T) {
	convey.Convey("Given the candidate constructor", t, func() {
		dob := time.Date(2010, time.February, 1, 0, 0, 0, 0, time.UTC)
		skills := []model.Skill{{Name: "Go", Level: model.Expert}}

		convey.Convey("When creating a new candidate", func() {
			c := model.NewCandidate("Berhane", dob, skills, model.GenderFemale)

			convey.Convey("Then it should carry the given values and an ID", func() {
				convey.So(c.ID, convey.ShouldNotBeEmpty)
				convey.So(c.Name, convey.ShouldEqual, "Berhane")
				convey.So(c.DateOfBirth, convey.ShouldEqual, dob)
				convey.So(c.Skills, convey.ShouldResemble, skills)
				convey.So(c.Gender, convey.ShouldEqual, model.GenderFemale)
			})
		})

		convey.Convey("When creating two candidates with identical fields", func() {
			a := model.NewCandidate("Abel", dob, nil, model.GenderMale)
			b := model.NewCandidate("Abel", dob, nil, model.GenderMale)

			convey.Convey("Then their identities should differ", func() {
				convey.So(a.ID, convey.ShouldNotEqual, b.ID)
			})
		})

		convey.Convey("When creating a job without gender requirement", func() {
			j := model.NewJob("Backend", dob, skills, model.GenderUnspecified)

			convey.Convey("Then the requirement should be unset", func() {
				convey.So(j.ID, convey.ShouldNotBeEmpty)
				convey.So(j.RequiredGender.IsSet(), convey.ShouldBeFalse)
			})
		})
	})
}

func TestParseSkillLevel(t *testing.T) {
	convey.Convey("Given skill level strings", t, func() {
		cases := map[string]model.SkillLevel{
			"beginner": model.Beginner,
			"Advanced": model.Advanced,
			" EXPERT ": model.Expert,
			"0":        model.Beginner,
			"2":        model.Expert,
		}

		convey.Convey("Then known names and numbers should parse", func() {
			for in, want := range cases {
				got, err := model.ParseSkillLevel(in)
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, want)
			}
		})

		convey.Convey("Then unknown values should be rejected", func() {
			_, err := model.ParseSkillLevel("guru")
			convey.So(errors.Is(err, model.ErrUnknownSkillLevel), convey.ShouldBeTrue)
		})

		convey.Convey("Then levels should print their names", func() {
			convey.So(model.Expert.String(), convey.ShouldEqual, "expert")
			convey.So(model.SkillLevel(7).Valid(), convey.ShouldBeFalse)
		})
	})
}

func TestParseGender(t *testing.T) {
	convey.Convey("Given gender strings", t, func() {
		convey.Convey("When the value is empty", func() {
			g, err := model.ParseGender("")

			convey.Convey("Then it should be unspecified", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(g.IsSet(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the value is lowercase", func() {
			g, err := model.ParseGender("f")

			convey.Convey("Then it should parse", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(g, convey.ShouldEqual, model.GenderFemale)
			})
		})

		convey.Convey("When the value is unknown", func() {
			_, err := model.ParseGender("X")

			convey.Convey("Then it should fail", func() {
				convey.So(errors.Is(err, model.ErrUnknownGender), convey.ShouldBeTrue)
			})
		})
	})
}
