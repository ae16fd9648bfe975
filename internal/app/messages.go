// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the service
// and command layers.
//
// Messages that are returned as errors are also the text printed to the
// terminal, so the wording is kept in one place.
package app

const (
	// MsgAPIKeyNotFound is printed when no API key was passed by flag,
	// environment or settings file.
	MsgAPIKeyNotFound = "Error: API key not found.\n\n" +
		"To fix this problem, please use any of the following methods (in order of precedence):\n" +
		"- Pass it using the -k/--api-key option.\n" +
		"- Set it in the SUBLIME_API_KEY environment variable.\n" +
		"- Run 'sublime setup' to save it to the configuration file.\n"

	// MsgPrivacyNotice asks for consent before a message leaves the machine.
	MsgPrivacyNotice = "Messages will be sent to Sublime Security servers in order to be processed. " +
		"This message is intended to preserve your privacy. You only need to accept once. " +
		"Would you like to continue?"

	// MsgPrivacyNoticeAnalyze is the analyze variant of MsgPrivacyNotice.
	MsgPrivacyNoticeAnalyze = "Messages will be sent to Sublime Security servers in order to run rules and queries. " +
		"This message is intended to preserve your privacy. You only need to accept once. " +
		"Would you like to continue?"

	MsgAborted = "Aborted!"

	MsgMissingDetectionInput = "You must specify either a .pql detections file/directory (-D) or a raw detection (-d)"
	MsgMissingQueryInput     = "Query or PQL file(s) is required"

	MsgDetectionNameRequired    = "Detection names are required"
	MsgAmbiguousDetectionTarget = "Specify one of either a PQL file, detection ID, or detection name."
	MsgDetectionTargetRequired  = "Detection ID, detection name, or PQL file(s) is required"
	MsgDetectionIDRequired      = "Detection ID is required"
	MsgNoMatchingDetections     = "No detections matched the given criteria"
	MsgMissingSubscribeTarget   = "Missing item(s) to subscribe to"

	MsgMessageIDRequired  = "Message Data Model ID is required"
	MsgNoMessagesToUpdate = "No messages to update!"

	MsgUserTargetRequired = "You must specify a user or --all"
	MsgNoUsersToUpdate    = "No users to update!"

	MsgInvalidMockCommand = "Invalid command"
	MsgEmptyFeedback      = "Feedback text is required"
	MsgUnsupportedInput   = "Input must be an EML or MSG file"

	MsgUnrecognizedJobStatus = "Unrecognized job status"

	// Format strings for bulk confirmations.
	MsgConfirmReviewAll   = "Are you sure you want to update all %d messages?"
	MsgConfirmUpdateUsers = "Are you sure you want to update all %d users?"
	MsgConfirmSubscribe   = "Are you sure you want to %s %s all %d detections?"
	MsgConfirmUnshareMany = "There are currently %d organizations subscribed to this detection. Are you sure you want to unshare it?"
	MsgConfirmUnshareOne  = "There is currently 1 organization subscribed to this detection. Are you sure you want to unshare it?"

	// Progress lines written while a backtest job runs.
	MsgJobSubmitted      = "Job with ID %s submitted"
	MsgJobTasksRemaining = "Tasks remaining: %d"
	MsgJobPending        = "Job pending"

	MsgOutputSaved       = "Output saved to %s"
	MsgRawMDMSaved       = "Raw Message Data Model saved to %s"
	MsgConfigurationSave = "Configuration saved to '%s'"
)
