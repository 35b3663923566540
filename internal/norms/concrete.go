package norms

// ConcreteClass is one entry of the concrete strength class table
type ConcreteClass struct {
	Name         string
	MaxStrength  float64 // upper bound of the class, MPa
	YoungModulus float64 // MPa
	StdType      int     // standard material type code of the target format
}

// ConcreteClasses, ascending by strength
var ConcreteClasses = []ConcreteClass{
	{Name: "Б7.5", MaxStrength: 7.5, YoungModulus: 16000, StdType: 8},
	{Name: "Б10", MaxStrength: 10, YoungModulus: 18000, StdType: 9},
	{Name: "Б12.5", MaxStrength: 12.5, YoungModulus: 21000, StdType: 10},
	{Name: "Б15", MaxStrength: 15, YoungModulus: 23000, StdType: 11},
	{Name: "Б17.5", MaxStrength: 17.5, YoungModulus: 25500, StdType: 12},
	{Name: "Б20", MaxStrength: 20, YoungModulus: 27000, StdType: 13},
	{Name: "Б22.5", MaxStrength: 22.5, YoungModulus: 28500, StdType: 14},
	{Name: "Б25", MaxStrength: 25, YoungModulus: 30000, StdType: 15},
	{Name: "Б27.5", MaxStrength: 27.5, YoungModulus: 31000, StdType: 16},
	{Name: "Б30", MaxStrength: 30, YoungModulus: 32500, StdType: 17},
	{Name: "Б35", MaxStrength: 35, YoungModulus: 34500, StdType: 18},
	{Name: "Б40", MaxStrength: 40, YoungModulus: 36000, StdType: 19},
	{Name: "Б45", MaxStrength: 45, YoungModulus: 37000, StdType: 20},
	{Name: "Б50", MaxStrength: 50, YoungModulus: 38000, StdType: 21},
	{Name: "Б55", MaxStrength: 55, YoungModulus: 39000, StdType: 22},
	{Name: "Б60", MaxStrength: 60, YoungModulus: 39500, StdType: 23},
}

// ConcreteClassFor returns the lowest class whose bound is not below the
// given strength. Anything above the table maps to the top class.
func ConcreteClassFor(strength float64) ConcreteClass {
	for _, c := range ConcreteClasses {
		if strength <= c.MaxStrength {
			return c
		}
	}
	return ConcreteClasses[len(ConcreteClasses)-1]
}
