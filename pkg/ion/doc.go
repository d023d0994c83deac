// Package ion holds the hypermedia primitives shared by forms: links and the
// resource envelope that carries them. Names follow the ION draft
// (http://ionwg.org/draft-ion.html) so JSON output can be handed to ION-aware
// clients unchanged.
package ion
