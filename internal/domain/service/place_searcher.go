package service

import "context"

// Place is a point of interest returned by a keyword search.
type Place struct {
	ID          string
	Name        string
	Address     string
	RoadAddress string
	Category    string
	Latitude    float64
	Longitude   float64
}

// PlaceSearcher looks up places by keyword, best match first.
type PlaceSearcher interface {
	Search(ctx context.Context, keyword string) ([]*Place, error)
}
