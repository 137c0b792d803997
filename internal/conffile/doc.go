// Package conffile loads declarative frame configurations from YAML or TOML
// and registers them into a transform.Configuration.
//
// # Schema Overview
//
//	version: "1"
//	frames: [body, servo_low, servo_high, laser]
//	static:
//	  - from: body
//	    to: servo_low
//	    translation: [0, 0, 0.12]
//	  - from: servo_high
//	    to: laser
//	    rotation: {axis: [0, 0, 1], angle: 1.5708}
//	dynamic:
//	  - from: servo_low
//	    to: servo_high
//	    producer: dynamixel
//	example:
//	  - from: servo_low
//	    to: servo_high
//	    rotation: [1, 0, 0, 0]
//
// A rotation is either a [w, x, y, z] quaternion or an axis/angle mapping
// (angle in radians). Static and example entries need a translation, a
// rotation or both; the missing one defaults to zero or identity.
//
// The same schema is accepted in TOML, chosen by the .toml extension:
//
//	version = "1"
//	frames = ["body", "laser"]
//
//	[[static]]
//	from = "body"
//	to = "laser"
//	translation = [0.0, 0.0, 0.3]
//	rotation = { axis = [0.0, 0.0, 1.0], angle = 1.5708 }
//
// # Registration order
//
// Apply declares frames first, then registers static, dynamic and example
// entries in file order. A later entry for the same frame pair replaces an
// earlier one, as it would through the registration API.
package conffile
