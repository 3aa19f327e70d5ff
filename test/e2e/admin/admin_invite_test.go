package admin_test

import (
	"testing"

	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteLifecycle tests the complete invitation flow:
// 1. Owner logs in and mints an invite
// 2. Invitee verifies the token and sees the invited email
// 3. Invitee accepts, setting a password, and receives a session
// 4. Invitee can log in with the new password
// 5. The consumed token is rejected on a second accept
func TestInviteLifecycle(t *testing.T) {
	baseURL, cleanup := setupBackofficeContainer(t)
	defer cleanup()

	owner := loginOwner(t, baseURL)

	inviteResp := sendDevModeInvite(t, owner, "newadmin@intlakaa.test")
	t.Logf("Invite created, expires at %s", inviteResp.ExpiresAt)

	// The invitee drives a fresh, unauthenticated client.
	invitee := adminsdk.NewClient(baseURL)

	verifyResp, err := invitee.VerifyInvite(t.Context(), inviteResp.Token)
	require.NoError(t, err)
	require.Equal(t, "newadmin@intlakaa.test", verifyResp.Email)

	acceptResp, err := invitee.AcceptInvite(t.Context(), adminsdk.AcceptInviteRequest{
		Token:    inviteResp.Token,
		Password: "NewAdmin123!",
		Name:     "New Admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, acceptResp.Token, "Accepting should issue a session token")
	require.Equal(t, "newadmin@intlakaa.test", acceptResp.Admin.Email)
	require.Equal(t, "admin", acceptResp.Admin.Role)

	t.Logf("Invite accepted, new admin ID: %s", acceptResp.Admin.ID)

	// The session from accept works immediately.
	me, err := invitee.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, acceptResp.Admin.ID, me.ID)

	// And so does a regular login.
	login := adminsdk.NewClient(baseURL)
	loginResp, err := login.Login(t.Context(), "newadmin@intlakaa.test", "NewAdmin123!")
	require.NoError(t, err)
	require.Equal(t, acceptResp.Admin.ID, loginResp.Admin.ID)

	t.Logf("New admin can log in")

	// Single use: the consumed token no longer verifies or accepts.
	_, err = invitee.VerifyInvite(t.Context(), inviteResp.Token)
	assertAPIError(t, err, adminsdk.ErrorCodeInvalidOrExpiredToken, "Consumed token should not verify")

	_, err = invitee.AcceptInvite(t.Context(), adminsdk.AcceptInviteRequest{
		Token:    inviteResp.Token,
		Password: "AnotherPass123!",
	})
	assertAPIError(t, err, adminsdk.ErrorCodeInvalidOrExpiredToken, "Consumed token should not accept")

	t.Logf("Consumed invite correctly rejected on reuse")
}

// TestInviteSupersede verifies that re-inviting an email invalidates the
// earlier token.
func TestInviteSupersede(t *testing.T) {
	baseURL, cleanup := setupBackofficeContainer(t)
	defer cleanup()

	owner := loginOwner(t, baseURL)

	first := sendDevModeInvite(t, owner, "twice@intlakaa.test")
	second := sendDevModeInvite(t, owner, "twice@intlakaa.test")
	require.NotEqual(t, first.Token, second.Token)

	invitee := adminsdk.NewClient(baseURL)

	_, err := invitee.VerifyInvite(t.Context(), first.Token)
	assertAPIError(t, err, adminsdk.ErrorCodeInvalidOrExpiredToken, "Superseded token should not verify")

	verifyResp, err := invitee.VerifyInvite(t.Context(), second.Token)
	require.NoError(t, err)
	require.Equal(t, "twice@intlakaa.test", verifyResp.Email)

	t.Logf("Superseded invite correctly invalidated")
}

// TestInviteValidation tests validation on the invite endpoints.
func TestInviteValidation(t *testing.T) {
	baseURL, cleanup := setupBackofficeContainer(t)
	defer cleanup()

	owner := loginOwner(t, baseURL)

	t.Run("MalformedEmail", func(t *testing.T) {
		_, err := owner.SendInvite(t.Context(), "not-an-email")
		assertAPIError(t, err, adminsdk.ErrorCodeInvalidRequest, "Malformed email should be rejected")
	})

	t.Run("UnknownToken", func(t *testing.T) {
		client := adminsdk.NewClient(baseURL)
		_, err := client.VerifyInvite(t.Context(), "definitely-not-a-token")
		assertAPIError(t, err, adminsdk.ErrorCodeInvalidOrExpiredToken, "Unknown token should be rejected")
	})

	t.Run("WeakPassword", func(t *testing.T) {
		inviteResp := sendDevModeInvite(t, owner, "weak@intlakaa.test")

		client := adminsdk.NewClient(baseURL)
		_, err := client.AcceptInvite(t.Context(), adminsdk.AcceptInviteRequest{
			Token:    inviteResp.Token,
			Password: "short",
		})
		assertAPIError(t, err, adminsdk.ErrorCodeInvalidRequest, "Weak password should be rejected")

		// The invite survives a failed accept.
		verifyResp, err := client.VerifyInvite(t.Context(), inviteResp.Token)
		require.NoError(t, err)
		require.Equal(t, "weak@intlakaa.test", verifyResp.Email)
	})
}

// TestOwnerInvitesAdminDirectly tests the owner-initiated invite path where
// the identity is created up front and the directory reflects it as pending.
func TestOwnerInvitesAdminDirectly(t *testing.T) {
	baseURL, cleanup := setupBackofficeContainer(t)
	defer cleanup()

	owner := loginOwner(t, baseURL)

	inviteResp, err := owner.InviteAdmin(t.Context(), adminsdk.InviteAdminRequest{
		Name:  "Direct Admin",
		Email: "direct@intlakaa.test",
	})
	require.NoError(t, err)
	require.Equal(t, "direct@intlakaa.test", inviteResp.Admin.Email)
	require.NotEmpty(t, inviteResp.Invite.Token, "Dev mode should surface the invite token")

	// The invitee shows up as pending, not active.
	directory, err := owner.ListAdmins(t.Context())
	require.NoError(t, err)
	require.Equal(t, 1, directory.Stats.Active, "Only the owner is active")
	require.Equal(t, 1, directory.Stats.Pending)
	require.Len(t, directory.Pending, 1)
	require.Equal(t, "direct@intlakaa.test", directory.Pending[0].Email)

	// The invitee cannot log in until the invite is accepted.
	probe := adminsdk.NewClient(baseURL)
	_, err = probe.Login(t.Context(), "direct@intlakaa.test", "DoesNotMatter1!")
	assertAPIError(t, err, adminsdk.ErrorCodeInvalidCredentials, "Passwordless identity should not log in")

	// Accepting flips them to active.
	acceptResp, err := probe.AcceptInvite(t.Context(), adminsdk.AcceptInviteRequest{
		Token:    inviteResp.Invite.Token,
		Password: "DirectAdmin1!",
	})
	require.NoError(t, err)
	require.Equal(t, inviteResp.Admin.ID, acceptResp.Admin.ID, "Accepting should claim the pre-created identity")
	require.Equal(t, "Direct Admin", acceptResp.Admin.Name)

	directory, err = owner.ListAdmins(t.Context())
	require.NoError(t, err)
	require.Equal(t, 2, directory.Stats.Active)
	require.Equal(t, 0, directory.Stats.Pending)

	t.Logf("Direct invite accepted, admin active")

	// Re-inviting the now-active email is a conflict.
	_, err = owner.InviteAdmin(t.Context(), adminsdk.InviteAdminRequest{
		Name:  "Direct Again",
		Email: "direct@intlakaa.test",
	})
	assertAPIError(t, err, adminsdk.ErrorCodeDuplicateEmail, "Re-inviting an active email should conflict")
}

// TestDirectoryManagement tests admin updates and deletes through the
// directory endpoints.
func TestDirectoryManagement(t *testing.T) {
	baseURL, cleanup := setupBackofficeContainer(t)
	defer cleanup()

	owner := loginOwner(t, baseURL)

	inviteResp := sendDevModeInvite(t, owner, "managed@intlakaa.test")

	invitee := adminsdk.NewClient(baseURL)
	acceptResp, err := invitee.AcceptInvite(t.Context(), adminsdk.AcceptInviteRequest{
		Token:    inviteResp.Token,
		Password: "Managed123!",
		Name:     "Managed Admin",
	})
	require.NoError(t, err)
	adminID := acceptResp.Admin.ID

	t.Run("Rename", func(t *testing.T) {
		name := "Renamed Admin"
		updated, err := owner.UpdateAdmin(t.Context(), adminID, adminsdk.UpdateAdminRequest{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "Renamed Admin", updated.Name)
		require.Equal(t, "managed@intlakaa.test", updated.Email, "Email should be unchanged")
	})

	t.Run("ChangeRole", func(t *testing.T) {
		updated, err := owner.UpdateAdminRole(t.Context(), adminID, "owner")
		require.NoError(t, err)
		require.Equal(t, "owner", updated.Role)

		updated, err = owner.UpdateAdminRole(t.Context(), adminID, "admin")
		require.NoError(t, err)
		require.Equal(t, "admin", updated.Role)
	})

	t.Run("DeleteAdmin", func(t *testing.T) {
		require.NoError(t, owner.DeleteAdmin(t.Context(), adminID))

		directory, err := owner.ListAdmins(t.Context())
		require.NoError(t, err)
		require.Equal(t, 1, directory.Stats.Active, "Only the owner should remain")

		// The deleted admin's session no longer resolves.
		_, err = invitee.Me(t.Context())
		require.Error(t, err, "Deleted identity should not resolve a session")
	})

	t.Run("OwnerNotDeletable", func(t *testing.T) {
		me, err := owner.Me(t.Context())
		require.NoError(t, err)

		err = owner.DeleteAdmin(t.Context(), me.ID)
		assertAPIError(t, err, adminsdk.ErrorCodeForbidden, "Owner identity should never be deletable")
	})

	t.Run("DeletePendingInviteFreesEmail", func(t *testing.T) {
		pending, err := owner.InviteAdmin(t.Context(), adminsdk.InviteAdminRequest{
			Name:  "Revoked Admin",
			Email: "revoked@intlakaa.test",
		})
		require.NoError(t, err)

		directory, err := owner.ListAdmins(t.Context())
		require.NoError(t, err)
		require.Len(t, directory.Pending, 1)

		require.NoError(t, owner.DeleteAdmin(t.Context(), directory.Pending[0].ID))

		// The token is dead and the email can be invited again.
		probe := adminsdk.NewClient(baseURL)
		_, err = probe.VerifyInvite(t.Context(), pending.Invite.Token)
		assertAPIError(t, err, adminsdk.ErrorCodeInvalidOrExpiredToken, "Revoked invite should not verify")

		_, err = owner.InviteAdmin(t.Context(), adminsdk.InviteAdminRequest{
			Name:  "Revoked Admin",
			Email: "revoked@intlakaa.test",
		})
		require.NoError(t, err, "Revoked email should be re-invitable")
	})
}

// TestNonOwnerCannotManageDirectory verifies that the directory endpoints are
// owner-only.
func TestNonOwnerCannotManageDirectory(t *testing.T) {
	baseURL, cleanup := setupBackofficeContainer(t)
	defer cleanup()

	owner := loginOwner(t, baseURL)

	inviteResp := sendDevModeInvite(t, owner, "plain@intlakaa.test")

	plain := adminsdk.NewClient(baseURL)
	_, err := plain.AcceptInvite(t.Context(), adminsdk.AcceptInviteRequest{
		Token:    inviteResp.Token,
		Password: "PlainAdmin1!",
	})
	require.NoError(t, err)

	_, err = plain.InviteAdmin(t.Context(), adminsdk.InviteAdminRequest{
		Name:  "Sneaky",
		Email: "sneaky@intlakaa.test",
	})
	assertAPIError(t, err, adminsdk.ErrorCodeForbidden, "Non-owner should not invite admins")

	_, err = plain.ListAdmins(t.Context())
	assertAPIError(t, err, adminsdk.ErrorCodeForbidden, "Non-owner should not list the directory")

	t.Logf("Directory endpoints correctly restricted to the owner role")
}
