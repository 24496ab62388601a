package game

// IsAlive reports whether the seat is still in the game, i.e. not busted
func IsAlive(s *State, idx int) bool {
	return !s.Seats[idx].Out
}

// IsActive reports whether the seat can still act this hand
func IsActive(s *State, idx int) bool {
	seat := s.Seats[idx]
	return !seat.Folded && !seat.AllIn && !seat.Out
}

// contends reports whether the seat still has a claim on the pot
func contends(s *State, idx int) bool {
	seat := s.Seats[idx]
	return !seat.Folded && !seat.Out
}

// NextIdx returns the next alive seat clockwise of idx. Action order uses it
// so busted seats are never visited.
func NextIdx(s *State, idx int) int {
	return NextAliveFrom(s, idx)
}

// NextAliveFrom returns the first alive seat clockwise of idx. If no other
// seat is alive it returns idx itself.
func NextAliveFrom(s *State, idx int) int {
	n := len(s.Seats)
	for step := 1; step <= n; step++ {
		j := (idx + step) % n
		if IsAlive(s, j) {
			return j
		}
	}
	return idx
}

// Contenders returns the seats neither folded nor out, in seat order
func Contenders(s *State) []int {
	var out []int
	for i := range s.Seats {
		if contends(s, i) {
			out = append(out, i)
		}
	}
	return out
}

// OnlyContender returns the sole seat neither folded nor out, or NoSeat when
// zero or more than one such seat remains.
func OnlyContender(s *State) int {
	found := NoSeat
	for i := range s.Seats {
		if !contends(s, i) {
			continue
		}
		if found != NoSeat {
			return NoSeat
		}
		found = i
	}
	return found
}

// RotateDealer moves the button to the next seat that is not out
func RotateDealer(s *State) {
	n := len(s.Seats)
	for step := 1; step <= n; step++ {
		j := (s.Dealer + step) % n
		if !s.Seats[j].Out {
			s.Dealer = j
			return
		}
	}
}
