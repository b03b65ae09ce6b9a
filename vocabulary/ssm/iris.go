package ssm

// Namespace prefixes for the vocabularies used in the converted quads. SSM
// domain models only ever reference terms below these five roots.
const (
	// XMLPrefix is the base IRI for XML Schema datatypes.
	XMLPrefix = "http://www.w3.org/2001/XMLSchema"

	// RDFSPrefix is the base IRI under which rdf-schema# terms live.
	RDFSPrefix = "http://www.w3.org/2000/01"

	// RDFPrefix is the base IRI under which 22-rdf-syntax-ns# terms live.
	RDFPrefix = "http://www.w3.org/1999/02"

	// OWLPrefix is the base IRI under which owl# terms live.
	OWLPrefix = "http://www.w3.org/2002/07"

	// SSMPrefix is the base IRI for the SSM trustworthiness ontology;
	// core# and domain# fragments resolve beneath it.
	SSMPrefix = "http://it-innovation.soton.ac.uk/ontologies/trustworthiness"
)

// DummyURI marks the optional second line of each CSV table, which holds
// default values for the table editor rather than domain model content.
// Any row containing it is skipped by every consumer.
const DummyURI = "domain#000000"

// Reserved feature URIs. A domain model declares support for an optional
// structural capability by listing the matching URI in DomainFeature.csv
// with its supported field set to TRUE.
const (
	// FeatureOptionalPackages: the model allows dependent packages to be
	// omitted, and Packages.csv carries an Enabled column.
	FeatureOptionalPackages = "feature#OptionalPackages"

	// FeaturePopulationModel: entities with population support expand to
	// min/average/max triplets.
	FeaturePopulationModel = "feature#PopulationModel"

	// FeatureThreatTypeFlags: secondary and normal-operation threats are
	// denoted by flags rather than naming conventions.
	FeatureThreatTypeFlags = "feature#ThreatTypeFlags"

	// FeatureRiskTypeFlags: threats and control strategies carry flags
	// selecting current and/or future risk calculations.
	FeatureRiskTypeFlags = "feature#RiskTypeFlags"

	// FeatureMixedThreatCauses: threats may mix trustworthiness attribute
	// and misbehaviour causes.
	FeatureMixedThreatCauses = "feature#MixedThreatCauses"

	// FeatureConstructionState: asset and relationship types are flagged
	// when only used during system model construction.
	FeatureConstructionState = "feature#ConstructionStateFlags"

	// FeatureConstructionDependencies: construction patterns form a
	// partial sequence from predecessor/successor relationships instead
	// of carrying an explicit priority.
	FeatureConstructionDependencies = "feature#ConstructionDependencies"
)

// Suffix tokens appended to (or inserted into) an average-case identifier
// to derive the minimum and maximum members of a population triplet.
const (
	MinSuffix = "_Min"
	MaxSuffix = "_Max"
)
