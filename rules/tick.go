package rules

import (
	log "github.com/sirupsen/logrus"
)

// Tick runs the match one step and returns the events it produced. Once the
// match is over Tick does nothing.
func (m *Match) Tick(in Input) []Event {
	if m.over {
		return nil
	}
	m.turn++

	var events []Event

	// 1. food, checked against the bodies as they were before this tick
	bodies := [2][]Point{m.snakes[0].Body(), m.snakes[1].Body()}
	for _, p := range Players {
		events = append(events, m.checkEaten(p, bodies)...)
	}

	// 2. pending input
	for _, p := range Players {
		m.snakes[p.index()].SetDirection(in.Move(p))
	}

	// 3. movement at each snake's own cadence, 4. effect countdown
	for _, s := range m.snakes {
		s.step()
	}

	// 5. terminal state against the other body, post movement
	for _, p := range Players {
		other := m.snakes[p.Other().index()]
		m.states[p.index()], m.causes[p.index()] = m.snakes[p.index()].CheckTerminal(other.body)
	}

	// 6. end of match
	winner := decideWinner(m.states, [2]int{m.snakes[0].score, m.snakes[1].score})
	if winner != NoPlayer {
		m.over = true
		m.winner = winner
		log.WithFields(log.Fields{
			"Turn":   m.turn,
			"Winner": winner,
			"Causes": m.causes,
		}).Debug("match ended")
		events = append(events, Event{Kind: EventMatchEnded, Winner: winner})
	}
	return events
}

func (m *Match) checkEaten(p Player, bodies [2][]Point) []Event {
	snake := m.snakes[p.index()]
	other := m.snakes[p.Other().index()]

	for _, f := range m.food {
		if !snake.CheckFoodCollision(f) {
			continue
		}
		t := f.Consume(snake, other)
		f.Spawn(m.rng, m.settings, bodies[0], bodies[1])
		log.WithFields(log.Fields{
			"Turn":   m.turn,
			"Player": p,
			"Food":   t,
			"Score":  snake.score,
		}).Debug("snake ate")
		return []Event{{Kind: EventFoodEaten, Player: p, Food: t, Effect: t.Effect()}}
	}
	return nil
}
