package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"kidlearn/internal/models"
)

// ReportService emails progress reports to parents via Amazon SES
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
}

// NewReportService creates a new report service. An empty fromEmail
// yields a disabled service that skips all sends.
func NewReportService(awsRegion, fromEmail, fromName string) (*ReportService, error) {
	if fromEmail == "" {
		log.Println("Report service disabled: SES_FROM_EMAIL not configured")
		return &ReportService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Report service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the report service is enabled
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails one child's progress summary and recent
// activities to the given address.
func (s *ReportService) SendProgressReport(ctx context.Context, toEmail string, child *models.User, summaries []models.CategorySummary, recent []models.ActivityRecord) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): progress report to %s", toEmail)
		return nil
	}

	subject := fmt.Sprintf("Learning progress for %s", child.ChildName)
	htmlBody := s.buildHTMLBody(child, summaries, recent)
	textBody := s.buildTextBody(child, summaries, recent)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

func (s *ReportService) buildHTMLBody(child *models.User, summaries []models.CategorySummary, recent []models.ActivityRecord) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #4a90e2; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		table { width: 100%; border-collapse: collapse; margin: 15px 0; }
		th, td { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
`)
	fmt.Fprintf(&b, "\t\t<div class=\"header\">\n\t\t\t<h1>%s's Learning Progress</h1>\n\t\t</div>\n", child.ChildName)
	b.WriteString("\t\t<div class=\"content\">\n")

	b.WriteString("\t\t\t<table>\n\t\t\t\t<tr><th>Category</th><th>Completed</th><th>Progress</th></tr>\n")
	for _, summary := range summaries {
		fmt.Fprintf(&b, "\t\t\t\t<tr><td>%s</td><td>%d of %d</td><td>%d%%</td></tr>\n",
			summary.Category, summary.CompletedItems, summary.TotalItems, summary.Percent)
	}
	b.WriteString("\t\t\t</table>\n")

	if len(recent) > 0 {
		b.WriteString("\t\t\t<h3>Recent activity</h3>\n\t\t\t<ul>\n")
		for _, activity := range recent {
			fmt.Fprintf(&b, "\t\t\t\t<li>%s</li>\n", describeActivity(activity))
		}
		b.WriteString("\t\t\t</ul>\n")
	}

	b.WriteString(`		</div>
		<div class="footer">
			<p>This is an automated email from KidLearn. Please do not reply.</p>
		</div>
	</div>
</body>
</html>
`)

	return b.String()
}

func (s *ReportService) buildTextBody(child *models.User, summaries []models.CategorySummary, recent []models.ActivityRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learning progress for %s\n\n", child.ChildName)
	for _, summary := range summaries {
		fmt.Fprintf(&b, "- %s: %d of %d completed (%d%%)\n",
			summary.Category, summary.CompletedItems, summary.TotalItems, summary.Percent)
	}

	if len(recent) > 0 {
		b.WriteString("\nRecent activity:\n")
		for _, activity := range recent {
			fmt.Fprintf(&b, "- %s\n", describeActivity(activity))
		}
	}

	b.WriteString("\n---\nThis is an automated email from KidLearn. Please do not reply.\n")
	return b.String()
}

func describeActivity(activity models.ActivityRecord) string {
	when := activity.Timestamp.Format("Jan 2 15:04")
	if activity.Activity == models.ActivityQuiz {
		score := ""
		if activity.Score != nil {
			score = fmt.Sprintf(" scoring %d", *activity.Score)
		}
		return fmt.Sprintf("%s: quiz on %s %s%s", when, activity.Category, activity.ItemID, score)
	}
	return fmt.Sprintf("%s: lesson on %s %s", when, activity.Category, activity.ItemID)
}

// sendEmail sends an email using Amazon SES
func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	log.Printf("Email sent successfully: to=%s, subject=%s", toEmail, subject)
	return nil
}
