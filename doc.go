// Package spyce models two-body orbital mechanics: Keplerian orbits in
// every conic regime, celestial body trees with their own calendars, and
// the anomaly conversions between them. Units are SI (meters, seconds,
// kilograms) and angles are radians throughout.
package spyce
