package study

import (
	"strings"
	"unicode"
)

// stopWords are dropped during keyword extraction. Short function
// words carry no grading signal.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "being": {}, "of": {}, "to": {},
	"in": {}, "on": {}, "at": {}, "for": {}, "and": {}, "or": {},
	"but": {}, "it": {}, "its": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "with": {}, "as": {}, "by": {}, "from": {}, "not": {},
	"no": {}, "do": {}, "does": {}, "did": {}, "can": {}, "could": {},
	"will": {}, "would": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "have": {}, "has": {}, "had": {}, "what": {},
	"which": {}, "who": {}, "how": {}, "when": {}, "where": {},
	"why": {}, "if": {}, "then": {}, "than": {}, "so": {}, "such": {},
	"about": {}, "into": {}, "over": {}, "under": {}, "between": {},
	"each": {}, "other": {}, "there": {}, "their": {}, "they": {},
	"them": {}, "we": {}, "you": {}, "your": {}, "also": {}, "very": {},
	"more": {}, "most": {}, "some": {}, "all": {}, "any": {}, "both": {},
}

// domainTerms is the reference vocabulary for the long-answer leniency
// rule: networking and systems terms whose presence signals the learner
// knows the territory even when their phrasing diverges from the
// reference answer.
var domainTerms = map[string]struct{}{
	"osi": {}, "tcp": {}, "udp": {}, "ip": {}, "http": {},
	"https": {}, "ftp": {}, "smtp": {}, "dns": {}, "dhcp": {},
	"arp": {}, "icmp": {}, "ethernet": {}, "router": {}, "switch": {},
	"gateway": {}, "subnet": {}, "packet": {}, "frame": {},
	"segment": {}, "datagram": {}, "port": {}, "socket": {},
	"handshake": {}, "protocol": {}, "layer": {}, "physical": {},
	"datalink": {}, "network": {}, "transport": {}, "session": {},
	"presentation": {}, "application": {}, "encapsulation": {},
	"routing": {}, "congestion": {}, "checksum": {}, "latency": {},
	"bandwidth": {}, "firewall": {}, "nat": {}, "tls": {}, "ssl": {},
	"header": {}, "payload": {}, "ack": {}, "syn": {}, "mac": {},
}

// ExtractKeywords tokenizes free text for grading: punctuation and
// digits become separators, tokens are lowercased, and single-character
// tokens and stop words are dropped. Order is preserved, duplicates
// removed.
func ExtractKeywords(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	var out []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// countDomainTerms returns the number of distinct domain terms
// appearing in text.
func countDomainTerms(text string) int {
	n := 0
	for _, kw := range ExtractKeywords(text) {
		if _, ok := domainTerms[kw]; ok {
			n++
		}
	}
	return n
}

// jaccard computes the Jaccard index of the whitespace-tokenized word
// sets of a and b (both already lowercased by the caller). Returns 0
// when either set is empty.
func jaccard(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}
