// this file supplies the stations known at startup
package main

import (
	"encoding/json"
	"io/ioutil"
)

// defaultSeed ships with the binary so a fresh install always has
// something to play.
var defaultSeed = []StationRecord{
	{
		ID:          "liquid_radio",
		Title:       "Liquid Radio",
		Description: "Smooth liquid funk and deep electronic grooves.",
		Source: []Source{
			{Src: "http://ice.somafm.com/thetrip-128-mp3", Type: "audio/mpeg"},
		},
	},
	{
		ID:          "groove_salad",
		Title:       "Groove Salad",
		Description: "A nicely chilled plate of ambient and downtempo beats.",
		Source: []Source{
			{Src: "http://ice.somafm.com/groovesalad-128-mp3", Type: "audio/mpeg"},
			{Src: "http://ice.somafm.com/groovesalad-128-aac", Type: "audio/aac"},
		},
	},
	{
		ID:          "drone_zone",
		Title:       "Drone Zone",
		Description: "Atmospheric textures with minimal beats.",
		Source: []Source{
			{Src: "http://ice.somafm.com/dronezone-128-mp3", Type: "audio/mpeg"},
		},
	},
	{
		ID:          "deep_space",
		Title:       "Deep Space One",
		Description: "Deep ambient electronic and space music.",
		Source: []Source{
			{Src: "http://ice.somafm.com/deepspaceone-128-mp3", Type: "audio/mpeg"},
		},
	},
}

// LoadSeed returns the seed list: the records in path when a path is
// configured, the built-in list otherwise.
func LoadSeed(path string) ([]StationRecord, error) {
	if path == "" {
		return defaultSeed, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []StationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
