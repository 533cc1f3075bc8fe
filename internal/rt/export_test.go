package rt

func (r *Record) SetHits(n uint64) { r.hits = n }
