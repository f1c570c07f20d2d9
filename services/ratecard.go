package services

// Rate card extracted from the company's priced quotations (CQ-010156,
// CQ-010167, CQ-010168, TEC1096MH). All rates are exclusive of VAT.
// Labour baseline is £43.75/hr. Hourly labour rates are priced into the
// items and are not offered as a browsable category.

// Rate is a single priced work item within a rate category.
type Rate struct {
	Key         string
	Description string
	Rate        float64
	Unit        string
}

// RateCategory is a named, ordered table of rates.
type RateCategory struct {
	Name  string
	Rates []Rate
}

// DefaultRateCategories returns the company rate card in declaration order.
// A fresh slice is returned on every call so callers cannot alter the card.
func DefaultRateCategories() []RateCategory {
	return []RateCategory{
		{Name: "Partitions & Stud Walls", Rates: []Rate{
			{"metalStudPartition", "Gyproc metal stud partition; 2x12.5mm taper edge wallboard each side; joints filled, taped, finished flush; soundproofing insulation", 106.51, "m²"},
			{"metalStudPartitionFull", "Metal stud partition complete (as above, lump sum for typical office)", 1597.70, "item"},
			{"timberStudWall", "Timber stud wall: C16/C24 47x95mm at 400mm centres, Knauf APR 35 100mm insulation, 12.5mm plasterboard, skim coat", 129.09, "m²"},
			{"reinforceStudWall", "Reinforce stud wall for wall-hung TV/equipment", 151.85, "item"},
			{"dotAndDab", "Dot & dab plasterboard to masonry walls (PVA prime, adhesive, plasterboard, skim)", 36.04, "m²"},
			{"boxingForSteel", "Boxing in steelwork (treated batten, insulation, fireline plasterboard, skim)", 20.45, "lm"},
		}},
		{Name: "Doors & Glazing", Rates: []Rate{
			{"standardFlushDoor", "Supply & install standard flush door (inc frame, ironmongery)", 798.40, "each"},
			{"removeGlassPartition", "Remove glass partitioning and set aside for reuse (approx 3.1m x 2.4m)", 246.50, "item"},
			{"installGlassPartition", "Install previously set aside glass partition to office area", 404.50, "item"},
			{"glazedPanels1m", "1m glazed panels (supply & fitting)", 640.00, "each"},
			{"glassPartitionAllowance", "Glass partition allowance (provisional)", 6000.00, "item"},
		}},
		{Name: "Decoration & Painting", Rates: []Rate{
			{"wallsMistAndTwoCoats", "Walls: one mist coat + two full coats vinyl silk/matt emulsion", 10.31, "m²"},
			{"wallsOver300mm", "Walls over 300mm wide: mist + 2 coats emulsion (small area)", 352.50, "item"},
			{"ceilingMistAndTwoCoats", "Ceiling: one mist coat + two full coats emulsion (white)", 5.32, "m²"},
			{"primeUndercoatPaintDoor", "Prime, undercoat and paint single door", 214.38, "each"},
			{"primeUndercoatPaintSkirting", "Prime, undercoat and paint skirting board", 19.69, "lm"},
			{"glossPaint2Coats", "Apply 2 coats of gloss paint", 5.47, "lm"},
			{"primerCoat", "Apply 1 coat of primer", 4.38, "lm"},
			{"steelPrimer", "Apply 1 coat red oxide primer to steelwork", 8.79, "m²"},
		}},
		{Name: "Flooring", Rates: []Rate{
			{"carpetTiles", "Carpet tiles (supply & fit, inc gripper rods)", 49.81, "m²"},
			{"lvtClick", "LVT click flooring (supply & fit)", 102.50, "m²"},
			{"gripperRods", "Fit gripper rods for carpet", 3.13, "lm"},
			{"coldLayTarmac", "Make good with cold lay tarmac", 257.50, "item"},
		}},
		{Name: "Roofing & Guttering", Rates: []Rate{
			{"removeReplaceRoofFixings", "Remove existing roof fixings and replace with new (approx 500no)", 1896.40, "item"},
			{"cleanClearGuttering", "Clean & clear high level guttering", 10.44, "lm"},
			{"refixGutteringBrackets", "Refix guttering brackets", 256.29, "item"},
			{"resealGutteringJoints", "Reseal all guttering joints", 309.50, "item"},
		}},
		{Name: "Drainage & Groundworks", Rates: []Rate{
			{"trenchExcavation450mm", "Excavate trench 450mm wide, 0.50m deep (by hand, compact with whacker)", 21.60, "lm"},
			{"disposeSpoilOnSite", "Dispose excavated material on site (temporary spoil heaps, avg 10m distance)", 84.00, "m³"},
			{"disposeSpoilOffSite", "Remove excavated material from site to tip (avg 10km, inc tipping charges)", 88.38, "m³"},
			{"soilPipeLaidToFall", "Supply & install soil pipe laid to fall, set in concrete", 41.20, "lm"},
			{"backfillGranular", "Backfill with arisings and granular material (10mm pea shingle)", 12.18, "lm"},
		}},
		{Name: "Ceilings & Insulation", Rates: []Rate{
			{"suspendedCeiling", "Suspended Gyplyner ceiling frame + 1 layer standard plasterboard + skim finish", 82.17, "m²"},
			{"ceilingTilesInstalled", "Ceiling tiles (supply & installation)", 2750.00, "item"},
			{"loftInsulation100mm", "Knauf Earthwool Combi Cut 44 Loft Roll 100mm between ceiling joists", 13.82, "m²"},
			{"acousticInsulation100mm", "Knauf Earthwool Acoustic Partition Roll APR 35 100mm between studs", 10.93, "m²"},
		}},
		{Name: "Skirting & Trim", Rates: []Rate{
			{"mdfTorusSkirting144mm", "Supply & install MDF Primed Torus Skirting 144mm (inc primer, undercoat, gloss)", 34.83, "lm"},
			{"mdfSkirtingSupplyOnly", "Supply & install MDF Primed Torus Skirting 144mm (no decoration)", 14.52, "lm"},
		}},
		{Name: "Structural Steel", Rates: []Rate{
			{"universalBeamInstall", "Supply, erect & set in position Universal Column UB 203x133x30 + primer", 941.09, "item"},
			{"padstone", "Supreme Concrete Padstone 215x215x102mm bedded in cement sand mortar (1:3)", 58.33, "each"},
		}},
		{Name: "Plastering", Rates: []Rate{
			{"fixPlasterboardToWalls", "Fix standard plasterboard to walls (screws)", 43.75, "m²"},
			{"fixPlasterboardToCeiling", "Fix standard plasterboard to ceiling", 43.75, "m²"},
			{"skimWalls", "Skim coat walls (Thistle Multi Finish)", 13.26, "m²"},
			{"skimCeiling", "Skim coat ceiling", 16.83, "m²"},
		}},
		{Name: "Provisional Sums", Rates: []Rate{
			{"electricalSmallRoom", "Electrical allowance (small room/office)", 1575.00, "item"},
			{"electricalMediumRoom", "Electrical allowance (medium room)", 2000.00, "item"},
			{"electricalLargeRoom", "Electrical allowance (large room)", 2450.00, "item"},
			{"kitchenFittingOnly", "Kitchen fitting allowance (fitting only, client supplies)", 3750.00, "item"},
			{"barAllowance", "Bar/servery allowance", 3000.00, "item"},
			{"featureWall", "Feature wall allowance", 4250.00, "item"},
			{"internalAlterations", "Internal alterations (inc skips)", 775.00, "item"},
			{"ceilingTiles", "Ceiling tiles (supply & install)", 2750.00, "item"},
			{"fitBlinds", "Fit blinds", 130.00, "item"},
		}},
	}
}
