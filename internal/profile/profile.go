// Package profile bundles named watermark parameter presets.
package profile

// Profile is a named set of codec parameters plus the JPEG quality
// used when saving the watermarked frame.
type Profile struct {
	Name    string
	BoxSize int     // pixels per bit cell
	Parity  int     // Reed-Solomon parity bytes
	Opacity float64 // mark strength in [0,1]
	Quality int     // JPEG save quality 1-100
}

// Built-in profiles.
var profiles = map[string]Profile{
	// Standard capacity/visibility trade-off.
	"default": {
		Name:    "default",
		BoxSize: 10,
		Parity:  6,
		Opacity: 1.0,
		Quality: 90,
	},
	// Heavy parity and a softer blend: survives aggressive
	// recompression at the same 16-character capacity.
	"robust": {
		Name:    "robust",
		BoxSize: 8,
		Parity:  20,
		Opacity: 0.6,
		Quality: 90,
	},
	// No error correction, faint mark. For lossless-stored assets.
	"light": {
		Name:    "light",
		BoxSize: 10,
		Parity:  0,
		Opacity: 0.4,
		Quality: 85,
	},
}

// Get returns a profile by name, falling back to default if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["default"]
	p.Name = name // preserve requested name
	return p
}

// Names lists the built-in profile names in a stable order.
func Names() []string {
	return []string{"default", "robust", "light"}
}
