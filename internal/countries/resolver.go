// Catalogus - Streaming Catalog Exploration and Recommendation
// Copyright 2026 J. Morley (jmorley-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jmorley-dev/catalogus

// Package countries maps coded country tokens to display names.
//
// The lookup table is static; there is no i18n beyond it. Unknown tokens
// pass through unchanged so the resolver is total and never fails.
package countries

import "strings"

// names maps upper-case ISO 3166-1 alpha-2 codes to display names.
var names = map[string]string{
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"BE": "Belgium",
	"BR": "Brazil",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CN": "China",
	"CO": "Colombia",
	"CZ": "Czechia",
	"DE": "Germany",
	"DK": "Denmark",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HK": "Hong Kong",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"MX": "Mexico",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PH": "Philippines",
	"PL": "Poland",
	"PT": "Portugal",
	"RU": "Russia",
	"SE": "Sweden",
	"SG": "Singapore",
	"TH": "Thailand",
	"TR": "Turkey",
	"TW": "Taiwan",
	"US": "United States",
	"ZA": "South Africa",
}

// Resolve expands a comma-separated list of country codes into display
// names. Tokens are trimmed of surrounding whitespace and looked up
// case-insensitively; unknown tokens pass through unchanged. The result
// is rejoined with ", ".
func Resolve(codeList string) string {
	tokens := strings.Split(codeList, ",")
	resolved := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if name, ok := names[strings.ToUpper(token)]; ok {
			resolved = append(resolved, name)
			continue
		}
		resolved = append(resolved, token)
	}
	return strings.Join(resolved, ", ")
}
