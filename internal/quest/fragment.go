package quest

// SealFragment is one piece of the shattered seal, bound to exactly
// one region. The recovered flag starts false and only ever flips to
// true; it never reverts.
type SealFragment struct {
	region      Region
	description string
	recovered   bool
}

// NewSealFragment creates an unrecovered fragment bound to a region.
func NewSealFragment(region Region, description string) SealFragment {
	return SealFragment{region: region, description: description}
}

// Region returns the region this fragment is bound to.
func (f SealFragment) Region() Region { return f.region }

// Description returns the fragment's flavor text.
func (f SealFragment) Description() string { return f.description }

// Recovered reports whether the fragment has been recovered.
func (f SealFragment) Recovered() bool { return f.recovered }
