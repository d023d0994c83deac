// Package attributes loads form attribute overlays from JSON or YAML files.
//
// An overlay declares attributes per Go type and field name, for types whose
// source cannot carry `form` struct tags:
//
//	types:
//	  Hero:
//	    RealName:
//	      secret: true
//	      description: Secret identity
//
// A loaded *Store plugs into the form builder with
// builder.WithAttributeSource(store).
package attributes
