package sheet

import (
	"context"
	"io"
	"time"

	"google.golang.org/api/drive/v3"
)

// Revision identifies a Drive file revision.
type Revision struct {
	ID       string
	Modified time.Time
}

// ModifiedTime returns the time the spreadsheet was last modified.
func (c *Client) ModifiedTime(ctx context.Context, key string) (time.Time, error) {
	f, err := call(ctx, c, "get modified time", func() (*drive.File, error) {
		return c.drive.Files.Get(key).Fields("modifiedTime").Context(ctx).Do()
	})
	if err != nil {
		return time.Time{}, err
	}

	modified, err := time.Parse(time.RFC3339, f.ModifiedTime)
	if err != nil {
		return time.Time{}, wrapAPI("get modified time", err)
	}

	return modified, nil
}

// LatestRevision walks the revision list of the spreadsheet, following page
// tokens, and returns the most recent revision.
func (c *Client) LatestRevision(ctx context.Context, key string) (*Revision, error) {
	latest := Revision{}
	page := ""

	for {
		revisions, err := call(ctx, c, "list revisions", func() (*drive.RevisionList, error) {
			rq := drive.NewRevisionsService(c.drive).List(key)
			if page != "" {
				rq = rq.PageToken(page)
			}

			return rq.Context(ctx).Do()
		})
		if err != nil {
			return nil, err
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse(time.RFC3339, revision.ModifiedTime)
			if err != nil {
				return nil, wrapAPI("list revisions", err)
			}

			if latest.Modified.Before(datetime) {
				latest.ID = revision.Id
				latest.Modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return nil, wrapAPI("list revisions", ErrSpreadsheetNotFound)
	}

	return &latest, nil
}

// Export downloads the spreadsheet converted to the given format and writes
// it to w. The Drive export API converts the whole file - exporting a
// single worksheet as CSV is implemented locally by Worksheet.ExportCSV.
func (c *Client) Export(ctx context.Context, key string, format ExportFormat, w io.Writer) error {
	response, err := call(ctx, c, "export spreadsheet", func() (io.ReadCloser, error) {
		rs, err := c.drive.Files.Export(key, format.MimeType).Context(ctx).Download()
		if err != nil {
			return nil, err
		}

		return rs.Body, nil
	})
	if err != nil {
		return err
	}

	defer response.Close()

	if _, err := io.Copy(w, response); err != nil {
		return wrapAPI("export spreadsheet", err)
	}

	return nil
}

// CreateFolder creates a drive folder, optionally inside a parent folder,
// and returns its id.
func (c *Client) CreateFolder(ctx context.Context, name, parent string) (string, error) {
	body := drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}

	if parent != "" {
		body.Parents = []string{parent}
	}

	f, err := call(ctx, c, "create folder", func() (*drive.File, error) {
		return c.drive.Files.Create(&body).Context(ctx).Do()
	})
	if err != nil {
		return "", err
	}

	return f.Id, nil
}

// FolderID returns the id of the first drive folder with the given name.
func (c *Client) FolderID(ctx context.Context, name string) (string, error) {
	list, err := call(ctx, c, "find folder", func() (*drive.FileList, error) {
		q := "mimeType='" + folderMimeType + "' and name='" + name + "'"
		return c.drive.Files.List().Q(q).Fields("files(id, name)").Context(ctx).Do()
	})
	if err != nil {
		return "", err
	}

	if len(list.Files) == 0 {
		return "", wrapAPI("find folder '"+name+"'", ErrFolderNotFound)
	}

	return list.Files[0].Id, nil
}

// Permissions lists the permissions on the spreadsheet.
func (c *Client) Permissions(ctx context.Context, key string) ([]*drive.Permission, error) {
	list, err := call(ctx, c, "list permissions", func() (*drive.PermissionList, error) {
		return c.drive.Permissions.List(key).
			Fields("permissions(id, type, role, emailAddress, domain)").
			Context(ctx).
			Do()
	})
	if err != nil {
		return nil, err
	}

	return list.Permissions, nil
}

// Share creates a permission on the spreadsheet. The address is an email
// for the 'user' and 'group' types, a domain for 'domain' and ignored for
// 'anyone'.
func (c *Client) Share(ctx context.Context, key, address, ptype, role string) (*drive.Permission, error) {
	body := drive.Permission{
		Type: ptype,
		Role: role,
	}

	switch ptype {
	case PermissionUser, PermissionGroup:
		body.EmailAddress = address

	case PermissionDomain:
		body.Domain = address
	}

	return call(ctx, c, "share spreadsheet", func() (*drive.Permission, error) {
		return c.drive.Permissions.Create(key, &body).Context(ctx).Do()
	})
}

// RemovePermission removes every permission granted to the given email or
// domain on the spreadsheet.
func (c *Client) RemovePermission(ctx context.Context, key, address string) error {
	permissions, err := c.Permissions(ctx, key)
	if err != nil {
		return err
	}

	for _, p := range permissions {
		if p.EmailAddress != address && p.Domain != address {
			continue
		}

		id := p.Id
		if _, err := call(ctx, c, "remove permission", func() (struct{}, error) {
			return struct{}{}, c.drive.Permissions.Delete(key, id).Context(ctx).Do()
		}); err != nil {
			return err
		}
	}

	return nil
}
