package intersight

import (
	"context"
	"fmt"
	"net/http"
)

// CloneProfileFromTemplate implements ProfileManager using a bulk MoCloner.
func (c *RealClient) CloneProfileFromTemplate(ctx context.Context, organizationMoid, templateMoid, name string) (string, error) {
	org := NewMoRef(ObjectTypeOrganization, organizationMoid)
	body := moClonerRequest{
		Sources: []MoRef{NewMoRef(ObjectTypeProfileTemplate, templateMoid)},
		Targets: []bulkTarget{{
			ObjectType:   ObjectTypeProfile,
			Name:         name,
			Organization: &org,
		}},
	}

	var resp bulkResponse
	if err := c.do(ctx, apiRequest{Method: http.MethodPost, Resource: resourceMoCloners, Body: body}, &resp); err != nil {
		return "", fmt.Errorf("failed to clone template into profile %q: %w", name, err)
	}

	moid, err := resp.firstMoid("clone")
	if err != nil {
		return "", fmt.Errorf("failed to clone template into profile %q: %w", name, err)
	}
	return moid, nil
}

// DetachProfileFromTemplate implements ProfileManager.
func (c *RealClient) DetachProfileFromTemplate(ctx context.Context, profileMoid string) error {
	body := map[string]any{"SrcTemplate": nil}
	if err := c.updateProfile(ctx, profileMoid, body); err != nil {
		return fmt.Errorf("failed to detach profile from template: %w", err)
	}
	return nil
}

// SetReservationReferences implements ProfileManager.
func (c *RealClient) SetReservationReferences(ctx context.Context, profileMoid string, refs []ReservationReference) error {
	if refs == nil {
		refs = []ReservationReference{}
	}
	body := map[string]any{"ReservationReferences": refs}
	if err := c.updateProfile(ctx, profileMoid, body); err != nil {
		return fmt.Errorf("failed to set reservation references: %w", err)
	}
	return nil
}

// MergeProfileWithTemplate implements ProfileManager using a bulk MoMerger.
func (c *RealClient) MergeProfileWithTemplate(ctx context.Context, profileMoid, templateMoid string) error {
	body := moMergerRequest{
		Sources:     []MoRef{NewMoRef(ObjectTypeProfileTemplate, templateMoid)},
		Targets:     []bulkTarget{{ObjectType: ObjectTypeProfile, Moid: profileMoid}},
		MergeAction: "Replace",
	}

	var resp bulkResponse
	if err := c.do(ctx, apiRequest{Method: http.MethodPost, Resource: resourceMoMergers, Body: body}, &resp); err != nil {
		return fmt.Errorf("failed to merge template into profile: %w", err)
	}
	if err := resp.err("merge"); err != nil {
		return fmt.Errorf("failed to merge template into profile: %w", err)
	}
	return nil
}

// AttachProfileToTemplate implements ProfileManager.
func (c *RealClient) AttachProfileToTemplate(ctx context.Context, profileMoid, templateMoid string) error {
	body := map[string]any{"SrcTemplate": NewMoRef(ObjectTypeProfileTemplate, templateMoid)}
	if err := c.updateProfile(ctx, profileMoid, body); err != nil {
		return fmt.Errorf("failed to attach profile to template: %w", err)
	}
	return nil
}

// updateProfile patches a server profile.
func (c *RealClient) updateProfile(ctx context.Context, profileMoid string, body any) error {
	return c.do(ctx, apiRequest{
		Method:   http.MethodPatch,
		Resource: resourceProfiles,
		Moid:     profileMoid,
		Body:     body,
	}, nil)
}
