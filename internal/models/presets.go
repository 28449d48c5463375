package models

// Publics is the list of audience groups offered by the entry form. The store
// tolerates free text; only the form constrains the choice.
var Publics = []string{
	"Baby Judo (4–5)", "Mini-poussins (6–7)", "Poussins (8–9)",
	"Benjamins (10–11)", "Minimes (12–13)", "Cadets (14–15)",
	"Juniors (16–20)", "Adultes", "Loisir", "Compétiteurs",
}

// ObjectivePresets is the list of objective labels offered by the entry form
var ObjectivePresets = []string{
	"Ukemi (chutes)", "Nage-waza", "Ne-waza", "Randori", "Kumi-kata",
	"Coordination/jeux", "Prépa compét", "Rituels/étiquette", "Assouplissements",
}
