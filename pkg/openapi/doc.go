// Package openapi bridges ION forms and OpenAPI 3 documents using
// kin-openapi.
//
// Forms go out as operations whose JSON request body is the compiled form
// schema (Operation, Document). OpenAPI operations come back in as forms
// (LoadForms, FormFromOperation), one field per request body property.
package openapi
