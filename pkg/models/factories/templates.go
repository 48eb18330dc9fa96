/*
Package factories provides constructors for WhatsApp message payloads, including message
templates.

WhatsApp message templates are specific message formats that businesses use to send out notifications
or customer care messages to people that have opted in to notifications. These notifications can include
a variety of messages such as appointment reminders, shipping information, issue resolution, or payment
updates.

This package has constructors for the following template types:

- Text-based message templates
- Media-based message templates
- Interactive message templates

Location-based templates, authentication templates with one-time password buttons and
Multi-Product Message templates have no constructor in this package.

All API calls made using this package must be authenticated with an access token.Developers can authenticate
their API calls with the access token generated in the App Dashboard > WhatsApp > API Setup panel.
Business Solution Providers (BSPs) need to authenticate themselves with an access token that has the
'whatsapp_business_messaging' permission.
*/
package factories
