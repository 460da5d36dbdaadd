// Package fatigue integrates Paris-law crack growth.
//
// [Integrator.Grow] advances a validated crack from its initial size
// toward the critical size where K_I reaches the fracture toughness,
// accumulating cycles with an adaptive crack-length step under a
// bounded step budget. When the toughness is never reached inside the
// model's calibrated ligament, the result carries the explicit
// no-crossing sentinel from the fracture package; the integration
// ceiling is an artifact of the calibrated window and never leaks into
// the result as a physical critical size.
package fatigue
