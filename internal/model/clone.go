package model

// Clone returns a deep copy of the project. Snapshots handed to readers
// must never alias the store's slices.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Databases = append([]Database(nil), p.Databases...)
	cp.Tables = make([]Table, len(p.Tables))
	for i, t := range p.Tables {
		cp.Tables[i] = t
		cp.Tables[i].Columns = append([]Column(nil), t.Columns...)
	}
	cp.Relationships = append([]Relationship(nil), p.Relationships...)
	cp.Indexes = make([]Index, len(p.Indexes))
	for i, idx := range p.Indexes {
		cp.Indexes[i] = idx
		cp.Indexes[i].Columns = append([]string(nil), idx.Columns...)
	}
	cp.Views = append([]View(nil), p.Views...)
	cp.Procedures = make([]Procedure, len(p.Procedures))
	for i, proc := range p.Procedures {
		cp.Procedures[i] = proc
		cp.Procedures[i].Parameters = append([]Parameter(nil), proc.Parameters...)
	}
	cp.Triggers = append([]Trigger(nil), p.Triggers...)
	cp.Users = make([]User, len(p.Users))
	for i, u := range p.Users {
		cp.Users[i] = u
		cp.Users[i].Privileges = append([]string(nil), u.Privileges...)
	}
	return &cp
}
