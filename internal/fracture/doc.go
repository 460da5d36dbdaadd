// Package fracture defines the core types of the assessment pipeline.
//
// The central input record is [CrackSpecification], constructed through
// [NewCrackSpecification], which runs the full geometry validity gate:
// a specification that exists is a specification whose normalized ratios
// lie inside the calibrated window for its crack type. Material data and
// loading are carried by [MaterialAndLoadSpec].
//
// Quantities that may legitimately have no finite value (cycles to
// failure when the stress intensity never reaches toughness within the
// modeled ligament) use the tagged [CycleCount] type rather than a
// floating-point infinity or a zero standing in for "no crossing".
//
// Units throughout: lengths in mm, stresses in MPa, stress intensity in
// MPa·√m. Paris-law C is expressed in m/cycle per (MPa·√m)^m.
package fracture
