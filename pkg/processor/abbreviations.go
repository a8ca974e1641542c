package processor

import "strings"

// Per-language abbreviation lists used by sentence-boundary detection.
// Unknown languages fall back to the English set.
var abbreviations = map[string][]string{
	"en": {
		"mr.", "mrs.", "ms.", "dr.", "prof.", "sr.", "jr.", "st.",
		"etc.", "e.g.", "i.e.", "vs.", "cf.", "al.", "inc.", "ltd.",
		"co.", "fig.", "vol.", "no.", "pp.", "approx.", "dept.",
		"est.", "min.", "max.",
	},
	"de": {
		"dr.", "prof.", "nr.", "ca.", "bzw.", "bspw.", "d.h.", "z.b.",
		"u.a.", "usw.", "vgl.", "ggf.", "inkl.", "evtl.", "z.t.", "s.",
	},
	"it": {
		"sig.", "sig.ra", "dott.", "prof.", "ing.", "ecc.", "es.",
		"pag.", "n.", "art.", "cap.",
	},
	"es": {
		"sr.", "sra.", "dr.", "dra.", "prof.", "etc.", "ej.", "p.ej.",
		"pág.", "núm.", "art.",
	},
	"fr": {
		"m.", "mme.", "mlle.", "dr.", "prof.", "etc.", "ex.", "p.",
		"fig.", "chap.",
	},
}

func abbreviationsFor(language string) map[string]struct{} {
	list, ok := abbreviations[strings.ToLower(language)]
	if !ok {
		list = abbreviations["en"]
	}
	set := make(map[string]struct{}, len(list))
	for _, a := range list {
		set[a] = struct{}{}
	}
	return set
}
