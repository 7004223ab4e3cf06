//go:build ignore

// generate_sample writes a synthetic vendor sign-up sheet for exercising
// fairgen parse and build.
//
//	go run scripts/generate_sample.go -year 2026 -vendors 60 > vendors.csv
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/mithrel/fairgen/internal/roster"
)

var (
	adjectives = []string{"Rustic", "Golden", "Wild", "Tiny", "Salty", "Blue", "Honest", "Quiet"}
	nouns      = []string{"Candles", "Honey", "Pottery", "Soap", "Woodworks", "Quilts", "Jams", "Prints"}
	months     = []string{"May", "Jun", "Jul", "Aug", "Sep"}
)

func main() {
	year := flag.Int("year", 2026, "season year")
	vendors := flag.Int("vendors", 60, "number of vendor rows")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(*seed))

	var dates []string
	for _, m := range months {
		for _, day := range []int{7, 21} {
			dates = append(dates, fmt.Sprintf("%s-%d", m, day))
		}
	}

	w := csv.NewWriter(os.Stdout)
	write := func(rec []string) {
		if err := w.Write(rec); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	write([]string{"Vendor sign-ups", strconv.Itoa(*year)})
	for i := 1; i < roster.PreambleLines; i++ {
		write([]string{""})
	}

	header := []string{
		roster.ColCompany, strconv.Itoa(*year), roster.ColWebsite, roster.ColInstagram,
		roster.ColPublicEmail, roster.ColPublicPhone, roster.ColShortDescription,
	}
	header = append(header, dates...)
	write(header)

	for i := 0; i < *vendors; i++ {
		name := fmt.Sprintf("%s %s %d", adjectives[mr.Intn(len(adjectives))], nouns[mr.Intn(len(nouns))], i+1)
		handle := strings.ToLower(strings.ReplaceAll(name, " ", ""))
		committed := ""
		if mr.Intn(10) > 0 { // ~90%
			committed = "X"
		}
		rec := []string{
			name,
			committed,
			"https://" + handle + ".example",
			"@" + handle,
			handle + "@example.com",
			fmt.Sprintf("555-%04d", mr.Intn(10000)),
			"Handmade " + strings.ToLower(nouns[mr.Intn(len(nouns))]),
		}
		for range dates {
			mark := ""
			if mr.Intn(3) == 0 {
				mark = "X"
			}
			rec = append(rec, mark)
		}
		write(rec)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
