package domain

// Stats counts the units in an index.
type Stats struct {
	Books      int
	Chapters   int
	Paragraphs int
	Sentences  int
	Words      int
}

// Stats walks the index and counts every level.
func (idx *Index) Stats() Stats {
	var s Stats
	for _, b := range idx.Books {
		s.Books++
		for _, c := range b.Chapters {
			s.Chapters++
			for _, p := range c.Paragraphs {
				s.Paragraphs++
				for _, sen := range p.Sentences {
					s.Sentences++
					s.Words += len(sen.Words)
				}
			}
		}
	}
	return s
}
