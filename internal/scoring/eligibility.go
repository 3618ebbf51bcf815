package scoring

import (
	"strings"

	"github.com/fedscout/fedscout/internal/models"
)

// Certification type strings as stored on CompanyCertification.CertType.
const (
	Cert8A      = "8A"
	CertHUBZone = "HUBZONE"
	CertSDVOSB  = "SDVOSB"
	CertVOSB    = "VOSB"
	CertWOSB    = "WOSB"
	CertEDWOSB  = "EDWOSB"
	CertSB      = "SB"
)

var smallBizCerts = []string{Cert8A, CertHUBZone, CertSDVOSB, CertVOSB, CertWOSB, CertEDWOSB, CertSB}

type setAsideRule struct {
	accepted []string
	// smallBizOnly set-asides are satisfied by being small, not by a
	// specific certification; missing it scores 20 rather than 0.
	smallBizOnly bool
}

// resolveSetAside maps the free-text set-aside string from the feed to the
// certifications that satisfy it. SAM.gov is not consistent about naming, so
// this matches on substrings of the lowercased value.
func resolveSetAside(setAside string) (setAsideRule, bool) {
	s := strings.ToLower(setAside)
	switch {
	case strings.Contains(s, "8(a)") || strings.Contains(s, "8a"):
		return setAsideRule{accepted: []string{Cert8A}}, true
	case strings.Contains(s, "hubzone"):
		return setAsideRule{accepted: []string{CertHUBZone}}, true
	case strings.Contains(s, "sdvosb") || strings.Contains(s, "service-disabled") || strings.Contains(s, "service disabled"):
		return setAsideRule{accepted: []string{CertSDVOSB}}, true
	case strings.Contains(s, "edwosb") || strings.Contains(s, "economically disadvantaged"):
		return setAsideRule{accepted: []string{CertEDWOSB}}, true
	case strings.Contains(s, "wosb") || strings.Contains(s, "women"):
		// EDWOSB is a subset of WOSB, so either certification qualifies.
		return setAsideRule{accepted: []string{CertWOSB, CertEDWOSB}}, true
	case strings.Contains(s, "vosb") || strings.Contains(s, "veteran"):
		return setAsideRule{accepted: []string{CertVOSB, CertSDVOSB}}, true
	case strings.Contains(s, "small business") || strings.Contains(s, "total small") || strings.Contains(s, "sba"):
		return setAsideRule{accepted: smallBizCerts, smallBizOnly: true}, true
	}
	return setAsideRule{}, false
}

func isOpenCompetition(setAside string) bool {
	s := strings.ToLower(strings.TrimSpace(setAside))
	return s == "" || s == "none" || strings.Contains(s, "full and open")
}

// ScoreEligibility checks whether the company can even bid. No set-aside
// means full and open competition and a perfect score. Holding more
// certifications can only help: the first accepted active certification
// found wins.
func ScoreEligibility(setAside, businessSize string, certs []models.CompanyCertification) (int, EligibilityBreakdown) {
	bd := EligibilityBreakdown{SetAside: setAside}

	if isOpenCompetition(setAside) {
		bd.Reason = EligibilityOpen
		return 100, bd
	}

	rule, known := resolveSetAside(setAside)
	if !known {
		bd.Reason = EligibilityUnknownSetAside
		return 50, bd
	}
	bd.RequiredCerts = rule.accepted

	for _, c := range certs {
		if !c.IsActive() {
			continue
		}
		for _, accepted := range rule.accepted {
			if strings.EqualFold(c.CertType, accepted) {
				bd.Reason = EligibilityCertHeld
				bd.MatchedCert = c.CertType
				return 100, bd
			}
		}
	}

	if rule.smallBizOnly {
		// Self-certified small businesses qualify without a formal cert.
		if strings.EqualFold(businessSize, "small") {
			bd.Reason = EligibilityCertHeld
			bd.MatchedCert = "self-certified small"
			return 100, bd
		}
		bd.Reason = EligibilitySmallBizOnly
		return 20, bd
	}

	bd.Reason = EligibilityCertMissing
	return 0, bd
}
