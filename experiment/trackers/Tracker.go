// Package trackers implements tracking and saving of the data
// generated by an experiment
package trackers

import (
	"encoding/gob"
	"log"
	"os"

	"github.com/samuelfneumann/gotabular/timestep"
)

// Tracker tracks data generated by an experiment. Experiments send
// every environmental timestep to each registered Tracker through
// Track; a Tracker caches whatever it measures and writes the cache
// to disk when Save is called, usually once the experiment finishes.
type Tracker[S comparable] interface {
	Track(t timestep.TimeStep[S])
	Save()
}

// LoadData reads a slice of float64 data saved by a Tracker at
// filename
func LoadData(filename string) []float64 {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	var data []float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		log.Fatalf("could not decode data file: %v", err)
	}
	return data
}

// saveFloats writes a slice of float64 data to filename with gob
func saveFloats(filename string, data []float64) {
	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("could not open save file: %v", err)
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err := en.Encode(data); err != nil {
		log.Fatalf("could not encode tracked data: %v", err)
	}
}
