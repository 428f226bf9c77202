package stopwords

// baseWords returns the built-in base table: Russian function words plus the
// most common English ones, the structural noise of a mixed-language corpus.
// Per-document technical vocabularies belong in the YAML overrides, not here.
func baseWords() Set {
	return NewSet(
		// Russian function words
		"и", "в", "во", "на", "не", "что", "он", "она", "оно", "они",
		"я", "ты", "вы", "мы",
		"а", "но", "как", "так", "же",
		"с", "со", "к", "ко", "у", "от", "до", "по", "из", "за", "над", "под",
		"это", "тогда", "там", "тут", "здесь",
		"его", "ее", "их", "ему", "ей", "им",
		"бы", "ли", "то", "вот", "уж", "ну",
		"для", "при", "без", "об", "про", "надо",
		"да", "или", "если", "чтобы",
		"о", "был", "было", "были",
		"ещё", "еще", "уже", "только", "всё", "все",

		// English function words
		"in", "on", "to", "and", "the", "is", "of", "for", "from", "by",
	)
}
