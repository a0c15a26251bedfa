// Package charts builds and renders the report's five visualizations.
//
// Chart construction is split in two. Builders are pure functions from a
// table (or synthetic point slice) to a Spec, a declarative value holding
// geometry, aesthetic mapping, labels and theme; they never touch the
// filesystem and never mutate their input. Render is the single impure
// step that turns a Spec into a PNG via gonum/plot.
//
// All five charts share the DarkMinimal theme, which carries the explicit
// text-color and tick-rotation overrides a dark background needs.
package charts
