// Package ssm defines the namespace prefixes, reserved feature URIs and
// core vocabulary terms of the Spyderisk system security modeller (SSM)
// trustworthiness ontology, as referenced by domain model CSV tables.
package ssm
