package intent

import (
	"regexp"
	"strings"

	contractx "github.com/finwell-ai/advisor/agent/contract"
)

// subjectWeight is how much a resolved subject contributes to a domain's
// score on top of keyword hits.
const subjectWeight = 2

// ambiguityFloor is the minimum score at which a tie between two domains
// is reported as ambiguous instead of resolved by declaration order.
const ambiguityFloor = 3

var base58AddressRe = regexp.MustCompile(`\b[1-9A-HJ-NP-Za-km-z]{32,44}\b`)

// Classifier maps free-form text to a domain and a resolved subject using
// keyword scoring and alias tables. It is deterministic: the same input
// always yields the same intent.
type Classifier struct{}

func NewClassifier() *Classifier { return &Classifier{} }

func (c *Classifier) Classify(raw string) (contractx.Intent, error) {
	normalized := normalize(raw)
	tokens := tokenize(normalized)

	scores := map[contractx.Domain]int{}
	for domain, vocab := range domainVocab {
		scores[domain] = countHits(tokens, vocab)
	}

	subjects := map[contractx.Domain]contractx.Subject{
		contractx.DomainStocks: resolveStock(tokens),
		contractx.DomainCrypto: resolveCrypto(raw, normalized, tokens),
		contractx.DomainHealth: resolveHealth(normalized, tokens),
	}
	for domain, subject := range subjects {
		if !subject.IsZero() {
			scores[domain] += subjectWeight
		}
	}

	domain, err := pickDomain(scores)
	if err != nil {
		return contractx.Intent{}, err
	}

	subject := subjects[domain]
	if subject.IsZero() {
		return contractx.Intent{}, contractx.ErrNoSubjectFound
	}

	return contractx.Intent{
		Domain:     domain,
		Subject:    subject,
		Confidence: confidence(scores, domain),
	}, nil
}

// pickDomain selects the highest-scoring domain. A tie at or above the
// ambiguity floor cannot be resolved safely; a tie below it falls back to
// declaration order so trivial queries still route somewhere.
func pickDomain(scores map[contractx.Domain]int) (contractx.Domain, error) {
	best := contractx.Domain("")
	bestScore := 0
	tied := false
	for _, domain := range contractx.Domains() {
		s := scores[domain]
		if s > bestScore {
			best, bestScore, tied = domain, s, false
		} else if s == bestScore && s > 0 {
			tied = true
		}
	}
	if bestScore == 0 {
		return "", contractx.ErrNoSubjectFound
	}
	if tied && bestScore >= ambiguityFloor {
		return "", contractx.ErrAmbiguousDomain
	}
	return best, nil
}

func confidence(scores map[contractx.Domain]int, chosen contractx.Domain) float64 {
	total := 0
	for _, s := range scores {
		total += s
	}
	if total == 0 {
		return 0
	}
	return float64(scores[chosen]) / float64(total)
}

func resolveCrypto(raw, normalized string, tokens []string) contractx.Subject {
	for _, tok := range tokens {
		if alias, ok := cryptoAliases[tok]; ok {
			return cryptoSubject(tok, alias)
		}
	}
	// Full names such as "bitcoin" or "shiba inu".
	for _, symbol := range cryptoSymbols {
		alias := cryptoAliases[symbol]
		if strings.Contains(normalized, strings.ToLower(alias.Name)) {
			return cryptoSubject(symbol, alias)
		}
	}
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		for _, symbol := range cryptoSymbols {
			if len(symbol) >= 3 && withinOneEdit(tok, symbol) {
				return cryptoSubject(symbol, cryptoAliases[symbol])
			}
		}
	}
	if addr := base58AddressRe.FindString(raw); addr != "" {
		// A bare base58 address is treated as a Solana wallet.
		subject := cryptoSubject("sol", cryptoAliases["sol"])
		subject.WalletAddress = addr
		return subject
	}
	return contractx.Subject{}
}

func cryptoSubject(symbol string, alias cryptoAlias) contractx.Subject {
	return contractx.Subject{
		Symbol:      strings.ToUpper(symbol),
		Name:        alias.Name,
		CanonicalID: alias.ID,
	}
}

func resolveStock(tokens []string) contractx.Subject {
	for _, tok := range tokens {
		if name, ok := stockTickers[tok]; ok {
			return stockSubject(tok, name)
		}
	}
	joined := strings.Join(tokens, " ")
	for _, ticker := range stockSymbols {
		if name := stockTickers[ticker]; strings.Contains(joined, strings.ToLower(name)) {
			return stockSubject(ticker, name)
		}
	}
	for _, tok := range tokens {
		if len(tok) < 3 {
			continue
		}
		for _, ticker := range stockSymbols {
			if !strings.Contains(ticker, ".") && withinOneEdit(tok, ticker) {
				return stockSubject(ticker, stockTickers[ticker])
			}
		}
	}
	return contractx.Subject{}
}

func stockSubject(ticker, name string) contractx.Subject {
	return contractx.Subject{
		Symbol:      strings.ToUpper(ticker),
		Name:        name,
		CanonicalID: strings.ToUpper(ticker),
	}
}

func resolveHealth(normalized string, tokens []string) contractx.Subject {
	var found []string
	for _, symptom := range symptomVocab {
		if strings.Contains(normalized, symptom) {
			found = append(found, symptom)
			continue
		}
		if !strings.Contains(symptom, " ") {
			for _, tok := range tokens {
				if len(tok) >= 3 && withinOneEdit(tok, symptom) {
					found = append(found, symptom)
					break
				}
			}
		}
	}
	if len(found) == 0 {
		return contractx.Subject{}
	}
	return contractx.Subject{Symptoms: found}
}

func countHits(tokens []string, vocab []string) int {
	hits := 0
	for _, tok := range tokens {
		for _, word := range vocab {
			if tok == word {
				hits++
				break
			}
		}
	}
	return hits
}

func normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// tokenize splits on anything that is not a letter, digit, or dot. Dots are
// kept so exchange-suffixed tickers like hal.ns survive as one token.
func tokenize(normalized string) []string {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.':
			return false
		}
		return true
	})
	out := fields[:0]
	for _, f := range fields {
		if f = strings.Trim(f, "."); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// withinOneEdit reports whether b can be produced from a with at most one
// substitution, insertion, or deletion.
func withinOneEdit(a, b string) bool {
	if a == b {
		return true
	}
	la, lb := len(a), len(b)
	if la > lb {
		a, b, la, lb = b, a, lb, la
	}
	if lb-la > 1 {
		return false
	}
	for i := 0; i < la; i++ {
		if a[i] != b[i] {
			if la == lb {
				return a[i+1:] == b[i+1:]
			}
			return a[i:] == b[i+1:]
		}
	}
	return true
}
