package moderation

// DefaultWords is the built-in deny list, applied when the configuration
// does not supply its own. Deliberately short; deployments with stricter
// policy override it via config.
var DefaultWords = []string{
	"arse",
	"ass",
	"asshole",
	"bastard",
	"bitch",
	"bollocks",
	"crap",
	"cunt",
	"damn",
	"dick",
	"douche",
	"fuck",
	"piss",
	"prick",
	"shit",
	"slut",
	"twat",
	"wanker",
	"whore",
}
