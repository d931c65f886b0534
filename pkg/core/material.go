package core

// Material describes how a surface is shaded. Reflectivity and Transparency
// are blend weights in [0,1]; reflectivity + transparency <= 1 is an
// unchecked precondition owned by scene construction. A Specularity of 0
// disables the highlight; a Refractivity of 0 disables bending.
type Material struct {
	Color        Color
	Specularity  float64
	Reflectivity float64
	Transparency float64
	Refractivity float64
}

// NewMaterial creates a material with all shading parameters
func NewMaterial(color Color, specularity, reflectivity, transparency, refractivity float64) Material {
	return Material{
		Color:        color,
		Specularity:  specularity,
		Reflectivity: reflectivity,
		Transparency: transparency,
		Refractivity: refractivity,
	}
}

// Matte creates a diffuse-only material with the given color
func Matte(color Color) Material {
	return Material{Color: color}
}
