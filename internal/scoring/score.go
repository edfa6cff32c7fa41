package scoring

// ScoreReKontra computes the per-player point deltas for a plain Re/Kontra
// hand. Every active player starts at zero; the Re players among the active
// set receive +value, everyone else on the table receives -value. Re is the
// marked team: any active player not listed is Kontra.
//
// When both Re players are active the returned deltas sum to zero.
func ScoreReKontra(rePlayers, activePlayers []string, value int) map[string]int {
	scores := make(map[string]int, len(activePlayers))
	for _, p := range activePlayers {
		scores[p] = 0
	}

	for _, p := range activePlayers {
		if containsPlayer(rePlayers, p) {
			scores[p] = value
		} else {
			scores[p] = -value
		}
	}

	return scores
}

// ScoreSolo computes the per-player point deltas for a solo hand. The solo
// player receives value times the number of opponents; every opponent
// receives -value. If the solo player is not active all scores stay zero:
// the classifier rejects that configuration, so this is a defensive no-op
// rather than an error, to keep a half-written session uncorrupted.
func ScoreSolo(soloPlayer string, activePlayers []string, value int) map[string]int {
	scores := make(map[string]int, len(activePlayers))
	for _, p := range activePlayers {
		scores[p] = 0
	}

	if !containsPlayer(activePlayers, soloPlayer) {
		return scores
	}

	opponents := 0
	for _, p := range activePlayers {
		if p != soloPlayer {
			scores[p] = -value
			opponents++
		}
	}
	scores[soloPlayer] = value * opponents

	return scores
}
