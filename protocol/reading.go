package protocol

import "fmt"

// Reading is a single decoded air quality measurement.
//
// All concentration values are in µg/m³. Particle counts are the
// number of particles above the given size in 0.1L of air.
//
// Reading is an immutable value: it is returned by value and holds no
// references to the frame it was decoded from.
type Reading struct {
	// PM1 is the standard PM1.0 concentration
	PM1 uint16

	// PM2_5 is the standard PM2.5 concentration
	PM2_5 uint16

	// PM10 is the standard PM10 concentration
	PM10 uint16

	// EnvPM1 is the environmental PM1.0 concentration.
	//
	// Note that some devices do not support the environmental
	// readings and will return garbage data for these values.
	EnvPM1 uint16

	// EnvPM2_5 is the environmental PM2.5 concentration
	EnvPM2_5 uint16

	// EnvPM10 is the environmental PM10 concentration
	EnvPM10 uint16

	// Particles0_3 is the count of particles larger than 0.3µm
	Particles0_3 uint16

	// Particles0_5 is the count of particles larger than 0.5µm
	Particles0_5 uint16

	// Particles1 is the count of particles larger than 1µm
	Particles1 uint16

	// Particles2_5 is the count of particles larger than 2.5µm
	Particles2_5 uint16

	// Particles5 is the count of particles larger than 5µm
	Particles5 uint16

	// Particles10 is the count of particles larger than 10µm
	Particles10 uint16
}

// PM returns the three standard PM concentrations as floating-point
// values. This is the reduced view exposed by simpler protocol
// variants that only report the standard concentrations.
func (r Reading) PM() (pm1, pm2_5, pm10 float64) {
	return float64(r.PM1), float64(r.PM2_5), float64(r.PM10)
}

// String returns a compact human-readable summary of the standard
// concentrations.
func (r Reading) String() string {
	return fmt.Sprintf("PM1: %dµg/m³, PM2.5: %dµg/m³, PM10: %dµg/m³",
		r.PM1, r.PM2_5, r.PM10)
}
