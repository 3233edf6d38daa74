package entity

// PredefinedSpecialties is the fixed list offered by the specialty filter panel.
var PredefinedSpecialties = []string{
	"General Physician",
	"Dentist",
	"Dermatologist",
	"Paediatrician",
	"Gynaecologist",
	"ENT",
	"Diabetologist",
	"Cardiologist",
	"Physiotherapist",
	"Endocrinologist",
	"Orthopaedic",
	"Ophthalmologist",
	"Gastroenterologist",
	"Pulmonologist",
	"Psychiatrist",
	"Urologist",
	"Dietitian/Nutritionist",
	"Psychologist",
	"Sexologist",
	"Nephrologist",
	"Neurologist",
	"Oncologist",
	"Ayurveda",
	"Homeopath",
}
