package convert

import (
	"io"
	"log/slog"

	"github.com/Spyderisk/domain-csv2nq/config"
	"github.com/Spyderisk/domain-csv2nq/nq"
)

// Converter owns all state for one conversion run: the active feature and
// package sets, the per-family entity catalogs, the derived-entity caches
// and the construction pattern dependency maps.
type Converter struct {
	opts *config.Options
	log  *slog.Logger

	nqw   *nq.Writer
	trace io.Writer

	// expandPopulation mirrors the --expanded flag. The flag wins over
	// the feature table: a model that does not advertise population
	// support still expands when asked to, with a warning, while the
	// declared feature list only ever reflects the table.
	expandPopulation bool

	features *orderedSet
	packages *orderedSet

	assets        *Catalog
	relationships *Catalog
	roles         *Catalog
	controls      *Catalog
	misbehaviours *Catalog
	twas          *Catalog

	// scaleEnds holds the saved end-of-scale URI per scale class: the
	// highest level for trustworthiness, the zero level for the rest.
	scaleEnds map[string]string

	// twaMisbehaviour maps each trustworthiness attribute to the
	// misbehaviour that erodes it, gleaned from the TWIS table.
	twaMisbehaviour map[string]string

	nodes            *orderedMap[Node]
	links            *orderedMap[RoleLink]
	controlSets      *orderedMap[EntitySet]
	misbehaviourSets *orderedMap[EntitySet]
	twaSets          *orderedMap[EntitySet]

	cpPredecessors map[string][]string
	cpSequence     *orderedMap[int]
}

// New creates a converter for one run.
func New(opts *config.Options, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{
		opts:             opts,
		log:              logger,
		expandPopulation: opts.Expanded,
		features:         newOrderedSet(),
		packages:         newOrderedSet(),
		assets:           NewCatalog(),
		relationships:    NewCatalog(),
		roles:            NewCatalog(),
		controls:         NewCatalog(),
		misbehaviours:    NewCatalog(),
		twas:             NewCatalog(),
		scaleEnds:        make(map[string]string),
		twaMisbehaviour:  make(map[string]string),
		nodes:            newOrderedMap[Node](),
		links:            newOrderedMap[RoleLink](),
		controlSets:      newOrderedMap[EntitySet](),
		misbehaviourSets: newOrderedMap[EntitySet](),
		twaSets:          newOrderedMap[EntitySet](),
		cpPredecessors:   make(map[string][]string),
		cpSequence:       newOrderedMap[int](),
	}
}

// Run converts every table in dependency order, streaming quads to out.
// trace, when non-nil, receives the construction sequence diagnostic. Later
// tables assume the catalogs populated by earlier ones, so the order below
// is fixed.
func (c *Converter) Run(out, trace io.Writer) error {
	c.nqw = nq.NewWriter(out)
	c.trace = trace

	if err := c.convertDomainModel("Domain model namespace, graph and reasoning class"); err != nil {
		return err
	}

	scales := []struct {
		saveHighest bool
		file        string
		entity      string
		heading     string
	}{
		{true, "TrustworthinessLevel.csv", "TrustworthinessLevel", "Scale for (asset) Trustworthiness Levels"},
		{false, "Likelihood.csv", "Likelihood", "Scale for (threat or asset behaviour) Likelihood Levels"},
		{false, "ImpactLevel.csv", "ImpactLevel", "Scale for (asset behaviour) Impact Levels"},
		{false, "RiskLevel.csv", "RiskLevel", "Scale for (threat or asset behaviour) Risk Levels"},
		{false, "PopulationLevel.csv", "PopulationLevel", "Scale for asset Population Levels"},
		{false, "CostLevel.csv", "CostLevel", "Scale for Control Cost Levels"},
		{false, "PerformanceImpactLevel.csv", "PerformanceImpactLevel", "Scale for Control Performance Overhead Levels"},
	}
	for _, s := range scales {
		end, err := c.convertScale(s.saveHighest, s.file, s.entity, s.heading)
		if err != nil {
			return err
		}
		c.scaleEnds[s.entity] = end
		c.log.Debug("Saved end of scale", slog.String("scale", s.entity), slog.String("uri", end))
	}

	if err := c.convertAssets("Domain asset definitions"); err != nil {
		return err
	}
	if err := c.convertRelationships("Asset relationship definitions"); err != nil {
		return err
	}
	if err := c.convertRoles("Role definitions"); err != nil {
		return err
	}

	families := []populationFamily{
		{"Control", "Control.csv", "ControlLocations.csv", "Control definitions"},
		{"Misbehaviour", "Misbehaviour.csv", "MisbehaviourLocations.csv", "Misbehaviour definitions"},
		{"TrustworthinessAttribute", "TrustworthinessAttribute.csv", "TWALocations.csv", "Trustworthiness Attribute definitions"},
	}
	for _, fam := range families {
		if err := c.convertPopulationEntities(fam); err != nil {
			return err
		}
	}

	if err := c.convertTWIS("Trustworthiness Impact Set definitions (relationship between Misbehaviours and TWAs)"); err != nil {
		return err
	}
	if err := c.convertMIS("Misbehaviour Inhibition Sets (relationship between Misbehaviours and Controls)"); err != nil {
		return err
	}

	if err := c.convertRootPatterns("Root pattern definitions"); err != nil {
		return err
	}
	if err := c.convertMatchingPatterns("Matching pattern definitions"); err != nil {
		return err
	}
	if err := c.convertConstructionPatterns("Construction pattern definitions"); err != nil {
		return err
	}

	if err := c.convertThreatCategories("Threat category definitions"); err != nil {
		return err
	}
	if err := c.convertComplianceSets("Compliance Set definitions"); err != nil {
		return err
	}
	if err := c.convertThreats("Threat definitions"); err != nil {
		return err
	}
	if err := c.convertControlStrategies("Control Strategy definitions"); err != nil {
		return err
	}

	if err := c.convertCASettings("CASetting definitions: whether a Control is assertible at an Asset"); err != nil {
		return err
	}
	if err := c.convertMADefaultSettings("MADefaultSetting definitions: default impact level for a Misbehaviour at an Asset"); err != nil {
		return err
	}
	if err := c.convertTWAADefaultSettings("TWAADefaultSetting definitions: default TW level for a Trustworthiness Attribute at an Asset"); err != nil {
		return err
	}

	c.emitNodes("Node definitions")
	c.emitRoleLinks("Role Link definitions")
	c.emitSets(ControlSetKind, "Control Set definitions: combination of a Control at an asset with a given Role")
	c.emitSets(MisbehaviourSetKind, "Misbehaviour Set definitions: combination of a Misbehaviour at an asset with a given Role")
	c.emitSets(TWASetKind, "Trustworthiness Attribute Set definitions: combination of a Trustworthiness Attribute at an asset with a given Role")

	return c.nqw.Flush()
}

// Graph returns the named graph URI decided by the domain model header.
func (c *Converter) Graph() string {
	return c.nqw.Graph()
}

// section writes the three comment lines opening a table section.
func (c *Converter) section(heading string) {
	c.nqw.WriteComment("")
	c.nqw.WriteComment(heading)
	c.nqw.WriteComment("")
}

// spacer writes one blank comment line.
func (c *Converter) spacer() {
	c.nqw.WriteComment("")
}

func (c *Converter) quad(subject, predicate, object string) {
	c.nqw.WriteQuad(subject, predicate, object)
}

// inPackage reports whether a row's package is enabled for this run.
func (c *Converter) inPackage(pkg string) bool {
	return c.packages.Has(pkg)
}
