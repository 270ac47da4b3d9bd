package list

// Selection is an insertion-ordered set of item ids.
// The zero value is an empty set ready to use.
type Selection struct {
	index map[string]int
	ids   []string
}

func (s *Selection) Add(id string) {
	if s.Contains(id) {
		return
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
}

func (s *Selection) Remove(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
}

func (s *Selection) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Toggle flips membership of id and reports whether it is now a member.
func (s *Selection) Toggle(id string) bool {
	if s.Contains(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

func (s *Selection) Len() int { return len(s.ids) }

// IDs returns a copy of the members in the order they were added.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Selection) Clear() {
	s.ids = nil
	s.index = nil
}
