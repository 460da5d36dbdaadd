// Package geometry provides the stress-intensity correction models.
//
// Each crack type maps to one [Model], pairing the closed-form geometry
// factor Y(a/W, a/c) with the validity window it was calibrated for:
//
//   - [ThroughCrack]: centre through-crack, secant width correction
//   - [EdgeCrack]: single edge crack, Gross–Brown polynomial
//   - [DoubleEdgeCrack]: symmetric edge cracks, Tada fit
//   - [EllipticalSurfaceCrack]: semi-elliptical surface flaw,
//     Newman–Raju front-face factor
//   - [CornerCrack]: quarter-elliptical corner flaw, calibrated fit
//
// Models are looked up with [ModelFor]; the stress intensity at a given
// crack size follows from [StressIntensity].
package geometry
