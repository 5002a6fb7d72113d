package search

import "sort"

// Synonyms maps a normalized job title term to alternative titles used by
// facilities for the same role.
var Synonyms = map[string][]string{
	"guard":          {"security officer", "prison officer", "custody officer"},
	"warden":         {"prison officer", "custody officer"},
	"k9":             {"canine", "dog handler"},
	"dog handler":    {"canine", "k9"},
	"cook":           {"chef", "kitchen", "catering"},
	"chef":           {"cook", "kitchen", "catering"},
	"nurse":          {"healthcare", "medical"},
	"medic":          {"paramedic", "medical", "healthcare"},
	"cleaner":        {"custodial", "janitor", "housekeeping"},
	"janitor":        {"custodial", "cleaner", "housekeeping"},
	"driver":         {"transport", "logistics"},
	"admin":          {"administration", "administrative", "office"},
	"office admin":   {"administrative", "clerk", "office"},
	"paramedic":      {"emergency response", "medic"},
	"firefighter":    {"fire safety", "emergency response"},
	"storekeeper":    {"warehouse", "inventory", "logistics"},
	"maintenance":    {"facilities", "repair", "handyman"},
	"security guard": {"security officer", "prison officer"},
}

func GetSynonyms(term string) []string {
	v, ok := Synonyms[term]
	if !ok {
		return []string{}
	}
	return append([]string{}, v...)
}

// compactKeys returns the multi-word synonym keys keyed by their spaceless
// form, e.g. "doghandler" -> "dog handler".
func compactKeys() map[string]string {
	keys := make([]string, 0, len(Synonyms))
	for k := range Synonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]string)
	for _, k := range keys {
		compact := ""
		for _, r := range k {
			if r != ' ' {
				compact += string(r)
			}
		}
		if compact != k {
			out[compact] = k
		}
	}
	return out
}
