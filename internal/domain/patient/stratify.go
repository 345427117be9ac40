package patient

// Stratify maps utilization and condition counts to a risk tier. Rules are
// evaluated in fixed priority order; the first match wins:
//
//  1. Level 3 when chronicConditionCount >= 3, or any recent admission, or
//     two or more ED visits.
//  2. Level 2 when chronicConditionCount >= 2, or any acute utilization.
//  3. Level 1 otherwise.
//
// Inputs are non-negative counts; callers treat absent values as zero.
func Stratify(chronicConditionCount, recentAdmissions, edVisits int) RiskLevel {
	acuteUtilization := recentAdmissions + edVisits

	if chronicConditionCount >= 3 || recentAdmissions >= 1 || edVisits >= 2 {
		return RiskLevel3
	}
	if chronicConditionCount >= 2 || acuteUtilization >= 1 {
		return RiskLevel2
	}
	return RiskLevel1
}
