package registry

import (
	"strings"

	"github.com/rs/zerolog"
)

// ParseAllowlist splits a comma-separated list of model names. Entries are
// trimmed and lowercased; empty entries are dropped.
func ParseAllowlist(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Filter returns the descriptors whose name appears in allowlist, keeping
// discovery order. Only an empty or blank allowlist allows everything; one
// holding nothing but separators allows nothing.
func Filter(discovered []Descriptor, allowlist string, log zerolog.Logger) []Descriptor {
	if strings.TrimSpace(allowlist) == "" {
		log.Info().Msg("no model allowlist set, using all discovered models")
		return append([]Descriptor(nil), discovered...)
	}
	allowed := ParseAllowlist(allowlist)
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	var out []Descriptor
	for _, d := range discovered {
		if _, ok := set[strings.ToLower(d.Name)]; ok {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		log.Warn().
			Strs("discovered", names(discovered)).
			Strs("allowed", allowed).
			Msg("no models matched between discovered models and the allowlist")
		return nil
	}
	log.Info().Strs("available", names(out)).Msg("filtered models by allowlist")
	return out
}
