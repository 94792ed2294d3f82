package extract

import (
	"regexp"
	"strconv"
)

// The visits-by-country and owner-share charts are rendered client side; the
// numbers only exist as inline script arrays, so these are read with pattern
// matches against the raw page rather than DOM selection.
var (
	dataOwnersPattern   = regexp.MustCompile(`(?s)var dataOwners = \[(.*?)\];`)
	ownersEntryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\[\s*'Owners:\s*([0-9.]+)%',\s*([0-9.]+)\s*\]`),
		regexp.MustCompile(`\[\s*'来自所有者：([0-9.]+)%',\s*([0-9.]+)\s*\]`),
	}
	dataCountriesPattern = regexp.MustCompile(`(?s)var dataCountries\s*=\s*\[(.*?)\];`)
	dataTicksPattern     = regexp.MustCompile(`(?s)var dataTicks\s*=\s*\[(.*?)\];`)
	quotedEntryPattern   = regexp.MustCompile(`"([^"]+)"`)
	digitRunPattern      = regexp.MustCompile(`\d+`)
	tickPercentPattern   = regexp.MustCompile(`^(.*),\s*([0-9.]+)%?\s*$`)
)

// ownerVisitShare extracts the owners' share of visits from the dataOwners
// script array. Nil when the array or its owners entry is absent.
func ownerVisitShare(page string) *float64 {
	m := dataOwnersPattern.FindStringSubmatch(page)
	if m == nil {
		return nil
	}

	for _, entry := range ownersEntryPatterns {
		if em := entry.FindStringSubmatch(m[1]); em != nil {
			share, err := strconv.ParseFloat(em[2], 64)
			if err != nil {
				continue
			}
			return &share
		}
	}
	return nil
}

// topCountryVisits pairs the dataTicks labels ("Hong Kong, 17%") with the
// dataCountries visit counts, in chart order, stamping 1-based ranks. A count
// mismatch between the two arrays rejects the whole chart rather than guess
// at alignment.
func topCountryVisits(page string) []CountryVisit {
	cm := dataCountriesPattern.FindStringSubmatch(page)
	if cm == nil {
		return nil
	}
	var visits []int64
	for _, run := range digitRunPattern.FindAllString(cm[1], -1) {
		n, err := strconv.ParseInt(run, 10, 64)
		if err != nil {
			return nil
		}
		visits = append(visits, n)
	}

	tm := dataTicksPattern.FindStringSubmatch(page)
	if tm == nil {
		return nil
	}
	entries := quotedEntryPattern.FindAllStringSubmatch(tm[1], -1)

	if len(entries) != len(visits) {
		return nil
	}

	var countries []CountryVisit
	for i, entry := range entries {
		pm := tickPercentPattern.FindStringSubmatch(entry[1])
		if pm == nil {
			continue
		}
		pct, err := strconv.ParseFloat(pm[2], 64)
		if err != nil {
			continue
		}
		countries = append(countries, CountryVisit{
			Country:    pm[1],
			Percentage: pct,
			Visits:     visits[i],
			Rank:       i + 1,
		})
	}
	return countries
}
