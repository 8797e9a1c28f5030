package sentiment

// Valence lexicon in the style of VADER, trimmed to vocabulary that shows
// up in market and health news snippets. Values roughly span -4..4.
var lexicon = map[string]float64{
	"surge":         2.9,
	"surges":        2.9,
	"soar":          3.0,
	"soars":         3.0,
	"rally":         2.4,
	"rallies":       2.4,
	"gain":          1.8,
	"gains":         1.8,
	"rise":          1.5,
	"rises":         1.5,
	"climb":         1.6,
	"climbs":        1.6,
	"record":        1.4,
	"beat":          1.9,
	"beats":         1.9,
	"strong":        2.1,
	"growth":        2.0,
	"profit":        1.9,
	"profits":       1.9,
	"bullish":       2.6,
	"upgrade":       2.2,
	"upgraded":      2.2,
	"breakthrough":  2.7,
	"recovery":      1.8,
	"recover":       1.6,
	"recovers":      1.6,
	"optimism":      2.0,
	"optimistic":    2.0,
	"positive":      1.8,
	"win":           1.9,
	"wins":          1.9,
	"success":       2.2,
	"successful":    2.2,
	"improve":       1.6,
	"improves":      1.6,
	"improved":      1.6,
	"healthy":       1.7,
	"relief":        1.5,
	"safe":          1.4,
	"effective":     1.7,
	"approval":      1.8,
	"approved":      1.8,

	"crash":        -3.4,
	"crashes":      -3.4,
	"plunge":       -3.0,
	"plunges":      -3.0,
	"plummet":      -3.1,
	"plummets":     -3.1,
	"tumble":       -2.4,
	"tumbles":      -2.4,
	"drop":         -1.7,
	"drops":        -1.7,
	"fall":         -1.6,
	"falls":        -1.6,
	"decline":      -1.7,
	"declines":     -1.7,
	"slump":        -2.3,
	"slumps":       -2.3,
	"loss":         -1.9,
	"losses":       -1.9,
	"weak":         -1.8,
	"bearish":      -2.6,
	"downgrade":    -2.2,
	"downgraded":   -2.2,
	"risk":         -1.3,
	"risks":        -1.3,
	"risky":        -1.6,
	"warning":      -1.8,
	"warns":        -1.8,
	"fear":         -2.1,
	"fears":        -2.1,
	"panic":        -2.7,
	"fraud":        -3.0,
	"scam":         -3.0,
	"hack":         -2.6,
	"hacked":       -2.8,
	"lawsuit":      -1.9,
	"investigation": -1.5,
	"sell-off":     -2.4,
	"selloff":      -2.4,
	"negative":     -1.8,
	"miss":         -1.6,
	"misses":       -1.6,
	"fail":         -2.2,
	"fails":        -2.2,
	"failure":      -2.3,
	"concern":      -1.4,
	"concerns":     -1.4,
	"crisis":       -2.8,
	"recall":       -1.9,
	"severe":       -2.2,
	"dangerous":    -2.4,
	"outbreak":     -2.3,
	"infection":    -1.8,
	"worsens":      -2.1,
	"worsening":    -2.1,
	"chronic":      -1.5,
	"fatal":        -3.2,
}

// Boosters amplify or dampen the following sentiment-bearing word.
var boosters = map[string]float64{
	"very":       0.293,
	"extremely":  0.293,
	"hugely":     0.293,
	"massively":  0.293,
	"sharply":    0.293,
	"slightly":   -0.293,
	"somewhat":   -0.293,
	"marginally": -0.293,
	"barely":     -0.293,
}

// Negations flip the valence of the word that follows within a short window.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"isnt":    true,
	"wasnt":   true,
	"doesnt":  true,
	"didnt":   true,
	"wont":    true,
	"cant":    true,
}
