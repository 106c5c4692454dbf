// Package branding holds product naming shared by every surface.
package branding

// AppName is the user-facing product name.
const AppName = "Game Smiths Club"

// Tagline is the landing page hero subtitle.
const Tagline = "Build games. Break games. Level up together."
