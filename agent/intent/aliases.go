package intent

import contractx "github.com/finwell-ai/advisor/agent/contract"

type cryptoAlias struct {
	ID   string
	Name string
}

// Symbol to CoinGecko id for commonly traded tokens. Full names resolve
// back to the symbol as well.
var cryptoAliases = map[string]cryptoAlias{
	"btc":   {ID: "bitcoin", Name: "Bitcoin"},
	"eth":   {ID: "ethereum", Name: "Ethereum"},
	"sol":   {ID: "solana", Name: "Solana"},
	"link":  {ID: "chainlink", Name: "Chainlink"},
	"dot":   {ID: "polkadot", Name: "Polkadot"},
	"ada":   {ID: "cardano", Name: "Cardano"},
	"avax":  {ID: "avalanche-2", Name: "Avalanche"},
	"matic": {ID: "matic-network", Name: "Polygon"},
	"doge":  {ID: "dogecoin", Name: "Dogecoin"},
	"shib":  {ID: "shiba-inu", Name: "Shiba Inu"},
	"xrp":   {ID: "ripple", Name: "Ripple"},
	"bnb":   {ID: "binancecoin", Name: "BNB"},
	"uni":   {ID: "uniswap", Name: "Uniswap"},
	"atom":  {ID: "cosmos", Name: "Cosmos"},
}

// Sorted symbol lists give scans a fixed order; map iteration would make
// classification nondeterministic when a query mentions several assets.
var cryptoSymbols = []string{
	"ada", "atom", "avax", "bnb", "btc", "doge", "dot", "eth",
	"link", "matic", "shib", "sol", "uni", "xrp",
}

// Ticker to company name for the tickers this service recognizes.
var stockTickers = map[string]string{
	"aapl":         "Apple",
	"msft":         "Microsoft",
	"goog":         "Google",
	"amzn":         "Amazon",
	"meta":         "Meta Platforms",
	"tsla":         "Tesla",
	"sunpharma.ns": "Sun Pharma",
	"icicibank.ns": "ICICI Bank",
	"hdfcbank.ns":  "HDFC Bank",
	"reliance.ns":  "Reliance Industries",
	"tcs.ns":       "Tata Consultancy Services",
	"hal.ns":       "Hindustan Aeronautics",
	"vedl.ns":      "Vedanta Ltd",
}

var stockSymbols = []string{
	"aapl", "amzn", "goog", "hal.ns", "hdfcbank.ns", "icicibank.ns",
	"meta", "msft", "reliance.ns", "sunpharma.ns", "tcs.ns", "tsla",
	"vedl.ns",
}

// Symptoms the health knowledge base understands. Multi-word entries are
// matched as phrases against the normalized query.
var symptomVocab = []string{
	"chest pain",
	"shortness of breath",
	"sore throat",
	"back pain",
	"headache",
	"fever",
	"cough",
	"nausea",
	"fatigue",
	"dizziness",
	"rash",
	"vomiting",
	"insomnia",
	"migraine",
}

// Keyword vocabularies for domain inference. Deliberately disjoint; shared
// words like "market" carry no signal and are omitted.
var domainVocab = map[contractx.Domain][]string{
	contractx.DomainStocks: {
		"stock", "stocks", "share", "shares", "equity", "ticker",
		"earnings", "dividend", "nasdaq", "nse",
	},
	contractx.DomainCrypto: {
		"crypto", "cryptocurrency", "token", "coin", "blockchain",
		"wallet", "onchain", "defi", "lamports",
	},
	contractx.DomainHealth: {
		"health", "symptom", "symptoms", "medication", "doctor",
		"insurance", "sick", "ill", "pain", "remedy",
	},
}
