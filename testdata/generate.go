//go:build ignore

// Generates the sample data files used in the README examples.
//
//	go run testdata/generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/parquet-go/parquet-go"
)

type Person struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
	City   string  `parquet:"city"`
}

var people = []Person{
	{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5, City: "New York"},
	{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3, City: "Boston"},
	{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7, City: "New York"},
	{ID: 4, Name: "diana", Age: 28, Active: true, Score: 91.2, City: "San Francisco"},
	{ID: 5, Name: "eve", Age: 42, Active: false, Score: 76.8, City: "Boston"},
}

func main() {
	dir := "testdata"

	if err := writeCSV(filepath.Join(dir, "people.csv"), false); err != nil {
		log.Fatal(err)
	}
	if err := writeCSV(filepath.Join(dir, "people.csv.gz"), true); err != nil {
		log.Fatal(err)
	}
	if err := writeParquet(filepath.Join(dir, "people.parquet")); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated people.csv, people.csv.gz and people.parquet with %d rows", len(people))
}

func writeCSV(path string, compress bool) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var w *csv.Writer
	if compress {
		zw := gzip.NewWriter(file)
		defer zw.Close()
		w = csv.NewWriter(zw)
	} else {
		w = csv.NewWriter(file)
	}

	if err := w.Write([]string{"id", "name", "age", "active", "score", "city"}); err != nil {
		return err
	}
	for _, p := range people {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			strconv.Itoa(int(p.Age)),
			strconv.FormatBool(p.Active),
			strconv.FormatFloat(p.Score, 'f', -1, 64),
			p.City,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeParquet(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Person](file)
	if _, err := writer.Write(people); err != nil {
		return err
	}
	return writer.Close()
}
