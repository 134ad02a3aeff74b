package tokenizer

// stopWords lists common English function words that carry no retrieval
// signal. Tokens in this set are dropped during keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "for": {},
	"with": {}, "are": {}, "was": {}, "were": {}, "been": {}, "have": {},
	"has": {}, "had": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "its": {}, "from": {}, "can": {}, "may": {}, "which": {},
	"who": {}, "what": {}, "when": {}, "where": {}, "how": {}, "all": {},
	"each": {}, "every": {}, "both": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {}, "not": {}, "only": {}, "same": {},
	"than": {}, "too": {}, "very": {}, "just": {}, "also": {}, "into": {},
	"over": {}, "after": {}, "before": {}, "between": {}, "under": {},
	"above": {}, "below": {}, "about": {}, "there": {}, "here": {},
	"then": {}, "now": {}, "because": {}, "while": {}, "although": {},
	"though": {}, "unless": {}, "until": {}, "since": {}, "during": {},
	"without": {}, "within": {}, "through": {}, "being": {}, "having": {},
	"doing": {}, "made": {}, "make": {}, "makes": {}, "said": {},
	"say": {}, "says": {}, "like": {}, "get": {}, "got": {}, "one": {},
	"two": {}, "first": {}, "new": {}, "used": {}, "use": {},
	"using": {}, "many": {}, "much": {}, "must": {}, "shall": {},
	"might": {},
}
