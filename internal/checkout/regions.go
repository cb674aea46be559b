package checkout

// Wilaya is one level of the Algerian shipping address hierarchy. Communes
// hang off their wilaya and are validated against it at submission.
type Wilaya struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	ArName string `json:"ar_name"`
}

// Regions is the fixed wilaya/commune dataset, seeded in code like the
// catalog. Delivery coverage decides what is listed here.
type Regions struct {
	wilayas  []Wilaya
	communes map[string][]string
}

func DefaultRegions() *Regions {
	r := &Regions{communes: make(map[string][]string)}

	add := func(w Wilaya, communes ...string) {
		r.wilayas = append(r.wilayas, w)
		r.communes[w.ID] = communes
	}

	add(Wilaya{ID: "05", Name: "Batna", ArName: "باتنة"},
		"Batna", "Barika", "Aïn Touta")
	add(Wilaya{ID: "06", Name: "Béjaïa", ArName: "بجاية"},
		"Béjaïa", "Akbou", "Amizour")
	add(Wilaya{ID: "09", Name: "Blida", ArName: "البليدة"},
		"Blida", "Boufarik", "Bouinan")
	add(Wilaya{ID: "13", Name: "Tlemcen", ArName: "تلمسان"},
		"Tlemcen", "Maghnia", "Remchi")
	add(Wilaya{ID: "15", Name: "Tizi Ouzou", ArName: "تيزي وزو"},
		"Tizi Ouzou", "Azazga", "Draâ Ben Khedda")
	add(Wilaya{ID: "16", Name: "Alger", ArName: "الجزائر"},
		"Alger-Centre", "Bab El Oued", "El Harrach", "Hussein Dey", "Bir Mourad Raïs")
	add(Wilaya{ID: "19", Name: "Sétif", ArName: "سطيف"},
		"Sétif", "El Eulma", "Aïn Arnat")
	add(Wilaya{ID: "23", Name: "Annaba", ArName: "عنابة"},
		"Annaba", "El Bouni", "El Hadjar")
	add(Wilaya{ID: "25", Name: "Constantine", ArName: "قسنطينة"},
		"Constantine", "El Khroub", "Hamma Bouziane", "Didouche Mourad")
	add(Wilaya{ID: "31", Name: "Oran", ArName: "وهران"},
		"Oran", "Es Sénia", "Bir El Djir", "Arzew")

	return r
}

func (r *Regions) Wilayas() []Wilaya {
	out := make([]Wilaya, len(r.wilayas))
	copy(out, r.wilayas)
	return out
}

func (r *Regions) Communes(wilayaID string) ([]string, bool) {
	cs, ok := r.communes[wilayaID]
	if !ok {
		return nil, false
	}
	out := make([]string, len(cs))
	copy(out, cs)
	return out, true
}

func (r *Regions) HasWilaya(wilayaID string) bool {
	_, ok := r.communes[wilayaID]
	return ok
}

func (r *Regions) HasCommune(wilayaID, commune string) bool {
	for _, c := range r.communes[wilayaID] {
		if c == commune {
			return true
		}
	}
	return false
}
