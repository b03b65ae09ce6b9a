package ssm

// RDF, RDFS and OWL fragments used by the converter. Each is the short form
// passed to the matching encoder in the nq package.
const (
	RDFType = "22-rdf-syntax-ns#type"

	RDFSLabel         = "rdf-schema#label"
	RDFSComment       = "rdf-schema#comment"
	RDFSSubClassOf    = "rdf-schema#subClassOf"
	RDFSSubPropertyOf = "rdf-schema#subPropertyOf"
	RDFSDomain        = "rdf-schema#domain"
	RDFSRange         = "rdf-schema#range"

	OWLImports        = "owl#imports"
	OWLOntology       = "owl#Ontology"
	OWLClass          = "owl#Class"
	OWLObjectProperty = "owl#ObjectProperty"
	OWLVersionInfo    = "owl#versionInfo"
)

// Core classes of the SSM trustworthiness ontology.
const (
	CoreModelFeature                = "core#ModelFeature"
	CoreModelPackage                = "core#ModelPackage"
	CoreRole                        = "core#Role"
	CoreTrustworthinessImpactSet    = "core#TrustworthinessImpactSet"
	CoreMisbehaviourInhibitionSet   = "core#MisbehaviourInhibitionSet"
	CoreRootPattern                 = "core#RootPattern"
	CoreMatchingPattern             = "core#MatchingPattern"
	CoreDistinctNodeGroup           = "core#DistinctNodeGroup"
	CoreConstructionPattern         = "core#ConstructionPattern"
	CoreInferredNodeSetting         = "core#InferredNodeSetting"
	CoreThreatCategory              = "core#ThreatCategory"
	CoreComplianceSet               = "core#ComplianceSet"
	CoreThreat                      = "core#Threat"
	CoreControlStrategy             = "core#ControlStrategy"
	CoreCASetting                   = "core#CASetting"
	CoreMADefaultSetting            = "core#MADefaultSetting"
	CoreTWAADefaultSetting          = "core#TWAADefaultSetting"
	CoreNode                        = "core#Node"
	CoreRoleLink                    = "core#RoleLink"
	CoreControlSet                  = "core#ControlSet"
	CoreMisbehaviourSet             = "core#MisbehaviourSet"
	CoreTrustworthinessAttributeSet = "core#TrustworthinessAttributeSet"
)

// Core properties of the SSM trustworthiness ontology.
const (
	CoreDomainGraph   = "core#domainGraph"
	CoreReasonerClass = "core#reasonerClass"
	CoreEnabled       = "core#enabled"
	CoreInPackage     = "core#inPackage"
	CoreLevelValue    = "core#levelValue"

	CoreIsAssertable        = "core#isAssertable"
	CoreIsVisible           = "core#isVisible"
	CoreHidden              = "core#hidden"
	CoreIsConstructionState = "core#isConstructionState"

	CoreMetaLocatedAt     = "core#metaLocatedAt"
	CoreHasMin            = "core#hasMin"
	CoreHasMax            = "core#hasMax"
	CoreMinOf             = "core#minOf"
	CoreMaxOf             = "core#maxOf"
	CoreUnitCost          = "core#unitCost"
	CorePerformanceImpact = "core#performanceImpact"

	CoreAffectedBy  = "core#affectedBy"
	CoreAffects     = "core#affects"
	CoreInhibited   = "core#inhibited"
	CoreInhibitedBy = "core#inhibitedBy"

	CoreHasKeyNode           = "core#hasKeyNode"
	CoreHasRootNode          = "core#hasRootNode"
	CoreHasLink              = "core#hasLink"
	CoreHasRootPattern       = "core#hasRootPattern"
	CoreHasSufficientNode    = "core#hasSufficientNode"
	CoreHasNecessaryNode     = "core#hasNecessaryNode"
	CoreHasProhibitedNode    = "core#hasProhibitedNode"
	CoreHasOptionalNode      = "core#hasOptionalNode"
	CoreHasProhibitedLink    = "core#hasProhibitedLink"
	CoreHasDistinctNodeGroup = "core#hasDistinctNodeGroup"
	CoreHasNode              = "core#hasNode"

	CoreHasMatchingPattern     = "core#hasMatchingPattern"
	CoreHasPriority            = "core#hasPriority"
	CoreIterate                = "core#iterate"
	CoreMaxIterations          = "core#maxIterations"
	CoreHasInferredNode        = "core#hasInferredNode"
	CoreHasInferredNodeSetting = "core#hasInferredNodeSetting"
	CoreDisplayedAtNode        = "core#displayedAtNode"
	CoreDisplayedAtLink        = "core#displayedAtLink"
	CoreIncludesNodeInURI      = "core#includesNodeInURI"
	CoreHasInferredLink        = "core#hasInferredLink"

	CoreRequiresTreatmentOf = "core#requiresTreatmentOf"
	CoreHasCategory         = "core#hasCategory"
	CoreAppliesTo           = "core#appliesTo"
	CoreThreatens           = "core#threatens"
	CoreHasFrequency        = "core#hasFrequency"
	CoreIsCurrentRisk       = "core#isCurrentRisk"
	CoreIsFutureRisk        = "core#isFutureRisk"
	CoreIsSecondaryThreat   = "core#isSecondaryThreat"
	CoreIsNormalOp          = "core#isNormalOp"

	CoreHasEntryPoint               = "core#hasEntryPoint"
	CoreHasSecondaryEffectCondition = "core#hasSecondaryEffectCondition"
	CoreCausesMisbehaviour          = "core#causesMisbehaviour"
	CoreBlocks                      = "core#blocks"
	CoreMitigates                   = "core#mitigates"
	CoreTriggers                    = "core#triggers"
	CoreHasBlockingEffect           = "core#hasBlockingEffect"
	CoreHasOptionalCS               = "core#hasOptionalCS"
	CoreHasMandatoryCS              = "core#hasMandatoryCS"

	CoreHasControl                  = "core#hasControl"
	CoreHasLevel                    = "core#hasLevel"
	CoreIndependentLevels           = "core#independentLevels"
	CoreHasMisbehaviour             = "core#hasMisbehaviour"
	CoreHasTrustworthinessAttribute = "core#hasTrustworthinessAttribute"

	CoreMetaHasAsset = "core#metaHasAsset"
	CoreHasRole      = "core#hasRole"
	CoreLinkType     = "core#linkType"
	CoreLinksFrom    = "core#linksFrom"
	CoreLinksTo      = "core#linksTo"
	CoreLocatedAt    = "core#locatedAt"
)
