package main

import (
	"fmt"
	"io"

	"townlink/internal/moderation"

	"gopkg.in/yaml.v3"
)

type fixtureFile struct {
	Businesses []businessFixture `yaml:"businesses"`
}

type businessFixture struct {
	Name        string          `yaml:"name"`
	Category    string          `yaml:"category"`
	Location    string          `yaml:"location"`
	Description string          `yaml:"description"`
	Phone       string          `yaml:"phone"`
	Email       string          `yaml:"email"`
	Website     string          `yaml:"website"`
	Hours       string          `yaml:"hours"`
	Image       string          `yaml:"image"`
	Latitude    *float64        `yaml:"latitude"`
	Longitude   *float64        `yaml:"longitude"`
	Approved    bool            `yaml:"approved"`
	Reviews     []reviewFixture `yaml:"reviews"`
}

type reviewFixture struct {
	ReviewerName string `yaml:"reviewer_name"`
	Text         string `yaml:"text"`
	Rating       int    `yaml:"rating"`
}

func loadFixtures(r io.Reader) (*fixtureFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fixtureFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if len(f.Businesses) == 0 {
		return nil, fmt.Errorf("fixtures contain no businesses")
	}
	return &f, nil
}

func (b businessFixture) input() moderation.SubmitBusinessInput {
	return moderation.SubmitBusinessInput{
		Name:        b.Name,
		Description: b.Description,
		Location:    b.Location,
		Category:    b.Category,
		Phone:       b.Phone,
		Email:       b.Email,
		Website:     b.Website,
		Hours:       b.Hours,
		Image:       b.Image,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
	}
}

func (r reviewFixture) input(businessID int64) moderation.SubmitReviewInput {
	rating := r.Rating
	return moderation.SubmitReviewInput{
		BusinessID:   businessID,
		ReviewerName: r.ReviewerName,
		Text:         r.Text,
		Rating:       &rating,
	}
}
