// Package authz is the single place access decisions are made. Services call
// Allow before every operation instead of comparing role strings ad hoc.
package authz

import "pesagem/internal/model"

// Resource identifies what an operation touches.
type Resource string

const (
	ResourceLancamentos  Resource = "lancamentos"
	ResourceUtilizadores Resource = "utilizadores"
	ResourceReferencias  Resource = "referencias"
	ResourceAnalytics    Resource = "analytics"
)

// Action identifies how the resource is touched.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Allow decides whether a caller may perform act on res. For lancamentos the
// owner is the motorista column of the record in question (the stored record
// on update/delete, the submitted one on create) and caller is the caller's
// nome_completo as carried in the token. Both are ignored for every other
// resource.
//
// The decision is deterministic in its arguments: no database access, no
// hidden state.
func Allow(role model.Role, res Resource, act Action, owner, caller string) bool {
	switch role {
	case model.RoleMaster:
		return true
	case model.RoleAuditor, model.RoleVisualizador:
		if res == ResourceUtilizadores {
			return false
		}
		return act == ActionRead
	case model.RoleMotorista:
		switch res {
		case ResourceLancamentos:
			return owner == caller
		case ResourceReferencias, ResourceAnalytics:
			return act == ActionRead
		default:
			return false
		}
	}
	return false
}
