package loop

import "github.com/tomz197/pong/internal/object"

// resolveCollisions bounces balls off walls and paddles, scores goals and fires targets.
func (s *State) resolveCollisions() {
	for _, w := range s.Walls {
		hits := s.Balls.ResolveWallCollisions(w)

		// A ball stays in contact for a few frames while it turns around,
		// so only newly arrived balls count as goals.
		fresh := hits - s.contacts[w.Tag()]
		s.contacts[w.Tag()] = hits
		if fresh > 0 {
			s.awardGoals(w.Tag(), fresh)
		}
		if s.Phase != PhasePlaying {
			return
		}
	}

	for _, p := range s.Players {
		s.Balls.ResolvePlayerCollisions(p)
	}

	for _, t := range s.Targets {
		if s.Balls.ResolveTargetCollision(t) {
			s.consumeTarget(t)
		}
	}
}

// scorerFor returns who scores when a ball reaches the given wall.
func scorerFor(tag object.WallTag) (object.PlayerTag, bool) {
	switch tag {
	case object.WallLeft:
		return object.Player2, true
	case object.WallRight:
		return object.Player1, true
	}
	return 0, false
}

// awardGoals adds n points for balls reaching wall and ends the match on the winning score.
func (s *State) awardGoals(wall object.WallTag, n int) {
	player, ok := scorerFor(wall)
	if !ok {
		return
	}

	score := s.Scores[player]
	for i := 0; i < n; i++ {
		score.Inc()
	}
	s.logger.Info("goal", "player", player, "wall", wall, "points", n,
		"p1", s.Scores[object.Player1].Value(), "p2", s.Scores[object.Player2].Value())

	if score.Value() >= s.tuning.WinningScore {
		s.Phase = PhaseOver
		s.Winner = player
		s.logger.Info("match over", "winner", player,
			"p1", s.Scores[object.Player1].Value(), "p2", s.Scores[object.Player2].Value())
	}
}

// consumeTarget takes a hit target off the court and brings it back after the cooldown.
func (s *State) consumeTarget(t *object.Target) {
	t.Consume()
	s.Balls.Scheduler().Schedule(s.tuning.TargetCooldown.Duration, t.Restore)
	s.logger.Debug("target hit", "kind", t.Kind, "balls", s.Balls.BallCount(), "boosted", s.Balls.Boosted())
}
