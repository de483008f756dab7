package sentiment

// defaultLexicon is an AFINN-style valence list trimmed to vocabulary
// that actually shows up in title and synopsis text. Values run from
// -5 (strongly negative) to +5 (strongly positive).
var defaultLexicon = map[string]float64{
	// positive
	"adore":       3,
	"adventure":   1,
	"amazing":     4,
	"beautiful":   3,
	"beloved":     3,
	"best":        3,
	"brave":       2,
	"brilliant":   4,
	"celebrate":   3,
	"charming":    2,
	"cheerful":    2,
	"comedy":      1,
	"courage":     2,
	"delight":     3,
	"dream":       1,
	"epic":        2,
	"excited":     3,
	"extraordinary": 2,
	"fabulous":    4,
	"faith":       1,
	"famous":      1,
	"fantastic":   4,
	"favorite":    2,
	"fortune":     2,
	"free":        1,
	"freedom":     2,
	"friend":      1,
	"friendship":  2,
	"fun":         3,
	"funny":       2,
	"generous":    2,
	"gentle":      2,
	"glorious":    3,
	"good":        3,
	"grace":       1,
	"great":       3,
	"happiness":   3,
	"happy":       3,
	"heartwarming": 3,
	"hero":        2,
	"hilarious":   3,
	"honest":      2,
	"hope":        2,
	"hopeful":     2,
	"inspire":     2,
	"joy":         3,
	"kind":        2,
	"laugh":       1,
	"legendary":   2,
	"love":        3,
	"loyal":       2,
	"lucky":       3,
	"magical":     2,
	"marvelous":   3,
	"miracle":     4,
	"paradise":    3,
	"passion":     2,
	"peace":       2,
	"perfect":     3,
	"precious":    2,
	"pretty":      1,
	"proud":       2,
	"rescue":      1,
	"reunite":     2,
	"romance":     2,
	"romantic":    2,
	"safe":        1,
	"save":        2,
	"smile":       2,
	"spectacular": 3,
	"strong":      2,
	"succeed":     3,
	"success":     2,
	"sweet":       2,
	"thrive":      2,
	"triumph":     4,
	"true":        2,
	"trust":       1,
	"warm":        1,
	"win":         4,
	"winner":      4,
	"wonderful":   4,

	// negative
	"abandon":    -2,
	"afraid":     -2,
	"alone":      -2,
	"anger":      -3,
	"angry":      -3,
	"awful":      -3,
	"bad":        -3,
	"betray":     -3,
	"bitter":     -2,
	"brutal":     -3,
	"chaos":      -2,
	"crime":      -3,
	"criminal":   -3,
	"cruel":      -3,
	"danger":     -2,
	"dangerous":  -2,
	"dark":       -1,
	"dead":       -3,
	"deadly":     -3,
	"death":      -2,
	"demon":      -2,
	"desperate":  -3,
	"destroy":    -3,
	"devastate":  -2,
	"die":        -3,
	"disaster":   -2,
	"doom":       -3,
	"enemy":      -2,
	"evil":       -3,
	"fail":       -2,
	"fear":       -2,
	"fight":      -1,
	"grief":      -2,
	"haunt":      -1,
	"hate":       -3,
	"hell":       -4,
	"horrible":   -3,
	"horror":     -3,
	"hurt":       -2,
	"kill":       -3,
	"killer":     -3,
	"lonely":     -2,
	"lose":       -3,
	"loss":       -3,
	"lost":       -3,
	"menace":     -2,
	"misery":     -2,
	"monster":    -1,
	"murder":     -2,
	"nightmare":  -3,
	"pain":       -2,
	"panic":      -3,
	"poison":     -2,
	"rage":       -2,
	"revenge":    -2,
	"ruin":       -2,
	"sad":        -2,
	"scare":      -2,
	"scared":     -2,
	"sinister":   -2,
	"sorrow":     -2,
	"steal":      -2,
	"struggle":   -2,
	"suffer":     -2,
	"terrible":   -3,
	"terrify":    -3,
	"terror":     -3,
	"threat":     -2,
	"tragedy":    -2,
	"tragic":     -2,
	"trap":       -1,
	"vicious":    -2,
	"victim":     -3,
	"villain":    -2,
	"violence":   -3,
	"violent":    -3,
	"war":        -2,
	"worst":      -3,
	"wound":      -2,
	"wreck":      -2,
}
