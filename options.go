package hackblock

//Options contains the settings of a Composer.
type Options struct {
	maxTerms int  //the largest number of terms a single bonded list can hold. 0 means no limit.
	maxHacks int  //the largest number of hacks a patch can hold. 0 means no limit.
	verbose  bool //log every merge.
}

//DefaultOptions returns options with no limits and no logging,
//which is what the package-level functions use.
func DefaultOptions() *Options {
	r := new(Options)
	r.maxTerms = 0
	r.maxHacks = 0
	r.verbose = false
	return r
}

//Returns the maximum number of terms per bonded list,
//and sets it to a new value, if given. 0 removes the limit.
func (O *Options) MaxTerms(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxTerms = n[0]
	}
	return O.maxTerms
}

//Returns the maximum number of hacks per patch,
//and sets it to a new value, if given. 0 removes the limit.
func (O *Options) MaxHacks(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxHacks = n[0]
	}
	return O.maxHacks
}

//Returns whether merges are logged, and sets it, if a value is given.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}
